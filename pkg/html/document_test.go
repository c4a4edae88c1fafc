package html

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/vango-dev/markup/pkg/style"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestInlineStyles(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "chained",
			node: P().Style("color", "red").Style("background", "white"),
			want: `<p style="color: red;background: white;"></p>`,
		},
		{
			name: "appends to style attribute",
			node: P(StyleAttr("margin: 0;"), style.Decl("color", "red")),
			want: `<p style="margin: 0;color: red;"></p>`,
		},
		{
			name: "duplicates dropped",
			node: WithStyle(P(), style.Decl("color", "red"), style.Decl("color", "red")),
			want: `<p style="color: red;"></p>`,
		},
		{
			name: "no declarations",
			node: WithStyle(P()),
			want: `<p></p>`,
		},
		{
			name: "attribute after style",
			node: Span().Style("color", "red").Attr("id", "s"),
			want: `<span id="s" style="color: red;"></span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderString(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneratedClasses(t *testing.T) {
	tree := P(Span().Style("color", "green")).
		Style("color", "red").
		Style("background", "white")

	gen := style.NewClassGenerator(style.WithReadableNames())
	var b Buffer
	if err := RenderWith(&b, tree, gen); err != nil {
		t.Fatal(err)
	}

	if want := `<p class="color-0 background-1"><span class="color-2"></span></p>`; b.String() != want {
		t.Errorf("markup = %q, want %q", b.String(), want)
	}
	if want := ".color-0{color:red;}.background-1{background:white;}.color-2{color:green;}"; gen.Stylesheet() != want {
		t.Errorf("stylesheet = %q, want %q", gen.Stylesheet(), want)
	}
}

func TestGeneratedClassMergesWithClassAttribute(t *testing.T) {
	gen := style.NewClassGenerator()
	var b Buffer
	if err := RenderWith(&b, P(Class("card"), style.Decl("color", "red")), gen); err != nil {
		t.Fatal(err)
	}
	if want := `<p class="card c0"></p>`; b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestGroupedClasses(t *testing.T) {
	same := P(Span().Style("color", "red").Style("background", "white")).
		Style("color", "red").
		Style("background", "white")

	gen := style.NewGroupedGenerator()
	var b Buffer
	if err := RenderWith(&b, same, gen); err != nil {
		t.Fatal(err)
	}
	if want := `<p class="c0"><span class="c0"></span></p>`; b.String() != want {
		t.Errorf("markup = %q, want %q", b.String(), want)
	}
	if want := ".c0{color:red;background:white;}"; gen.Stylesheet() != want {
		t.Errorf("stylesheet = %q, want %q", gen.Stylesheet(), want)
	}

	different := P(Span().Style("color", "green").Style("background", "white")).
		Style("color", "red").
		Style("background", "white")

	gen = style.NewGroupedGenerator()
	b.Reset()
	if err := RenderWith(&b, different, gen); err != nil {
		t.Fatal(err)
	}
	if want := `<p class="c0"><span class="c1"></span></p>`; b.String() != want {
		t.Errorf("markup = %q, want %q", b.String(), want)
	}
}

func TestDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  Node
		want string
	}{
		{
			name: "minimal",
			doc:  NewDocument(nil, P("hi"), style.None),
			want: `<!doctype html><html><head></head><body><p>hi</p></body></html>`,
		},
		{
			name: "no styles no style element",
			doc:  NewDocument(Title("T"), P("hi"), style.Class),
			want: `<!doctype html><html><head><title>T</title></head><body><p>hi</p></body></html>`,
		},
		{
			name: "class policy",
			doc:  NewDocument(Title("T"), P().Style("color", "red"), style.Class),
			want: `<!doctype html><html><head><title>T</title><style>.c0{color:red;}</style></head><body><p class="c0"></p></body></html>`,
		},
		{
			name: "grouped policy",
			doc:  NewDocument(nil, Seq(P().Style("color", "red"), Div().Style("color", "red")), style.Grouped),
			want: `<!doctype html><html><head><style>.c0{color:red;}</style></head><body><p class="c0"></p><div class="c0"></div></body></html>`,
		},
		{
			name: "none policy inlines",
			doc:  NewDocument(nil, P().Style("color", "red"), style.None),
			want: `<!doctype html><html><head></head><body><p style="color: red;"></p></body></html>`,
		},
		{
			name: "head styles are inline",
			doc:  NewDocument(Meta().Style("color", "red"), P(), style.Class),
			want: `<!doctype html><html><head><meta style="color: red;"></head><body><p></p></body></html>`,
		},
		{
			name: "lang",
			doc:  Document{Body: P(), Lang: "en"},
			want: `<!doctype html><html lang="en"><head></head><body><p></p></body></html>`,
		},
		{
			name: "decorated document",
			doc:  WithAttribute(NewDocument(nil, P(), style.Class), Data("theme", "dark")),
			want: `<!doctype html><html data-theme="dark"><head></head><body><p></p></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderString(tt.doc); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestDocumentExplicitGenerator(t *testing.T) {
	gen := style.NewClassGenerator(style.WithReadableNames())
	doc := Document{Body: P().Style("color", "red"), Generator: gen, Styles: style.None}

	want := `<!doctype html><html><head><style>.color-0{color:red;}</style></head><body><p class="color-0"></p></body></html>`
	if got := RenderString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocumentFreshGeneratorPerRender(t *testing.T) {
	doc := NewDocument(nil, P().Style("color", "red"), style.Class)
	first := RenderString(doc)
	second := RenderString(doc)
	if first != second {
		t.Errorf("renders differ:\n%s\n%s", first, second)
	}
}

func TestRenderDocumentSnapshot(t *testing.T) {
	head := Seq(
		Meta(Charset("utf-8")),
		Title("Snapshot & friends"),
		Link(Rel("stylesheet"), Href("/base.css")),
	)
	body := Main(Class("page"),
		H1("Hello").Style("font-size", "2em"),
		Ul(Each([]string{"one", "two"}, func(s string) Styled {
			return Li(s).Style("margin", "0", style.WithPseudo(style.FirstChild))
		})),
		Comment("end"),
	)

	for _, policy := range []style.Policy{style.None, style.Class, style.Grouped} {
		t.Run(policy.String(), func(t *testing.T) {
			snaps.MatchSnapshot(t, string(RenderDocument(head, body, policy)))
		})
	}
}
