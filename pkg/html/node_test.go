package html

import (
	"strings"
	"sync"
	"testing"
)

func TestRenderNodes(t *testing.T) {
	item := Li("one")
	var missing *Attributed

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"empty", Empty{}, ``},
		{"nil seq", Seq(), ``},
		{"single seq", Seq(P()), `<p></p>`},
		{"element", Element{Tag: "div", Child: Text("x")}, `<div>x</div>`},
		{"element nil child", Element{Tag: "div"}, `<div></div>`},
		{"void", Br(), `<br>`},
		{"void with attributes", Img(Src("a.png"), Alt("A")), `<img src="a.png" alt="A">`},
		{"void ignores children", VoidTag("hr", "text", P()), `<hr>`},
		{"nested", Div(H1("Title"), P("Content")), `<div><h1>Title</h1><p>Content</p></div>`},
		{"tuple with nil", Tuple{P(), nil, Span()}, `<p></p><span></span>`},
		{"custom tag", Tag("my-widget", Attr("size", "2"), "hi"), `<my-widget size="2">hi</my-widget>`},
		{"nil argument skipped", Div(nil, "a"), `<div>a</div>`},
		{"node slice argument", Ul([]Node{Li("a"), nil, Li("b")}), `<ul><li>a</li><li>b</li></ul>`},

		{"if true", If(true, P()), `<p></p>`},
		{"if false", If(false, P()), ``},
		{"unless", Unless(false, P()), `<p></p>`},
		{"maybe nil", Maybe(missing), ``},
		{"maybe value", Maybe(&item), `<li>one</li>`},
		{"if else then", IfElse(true, P(), Span()), `<p></p>`},
		{"if else else", IfElse(false, P(), Span()), `<span></span>`},
		{"zero either", Either[String, Empty]{}, ``},
		{"optional zero", Optional[Attributed]{}, ``},

		{"switch match", Switch("b", CaseOf("a", Node(P())), CaseOf("b", Node(Span()))), `<span></span>`},
		{"switch default", Switch(3, CaseOf(1, Node(P())), Default[int](Text("other"))), `other`},
		{"switch none", Switch(3, CaseOf(1, Node(P()))), ``},

		{"each", Ul(Each([]string{"a", "b"}, func(s string) Attributed { return Li(s) })), `<ul><li>a</li><li>b</li></ul>`},
		{"range", Range([]string{"x", "y"}, func(s string, i int) String { return Textf("%d%s", i, s) }), `0x1y`},
		{"repeat", Repeat(3, func(int) Attributed { return Br() }), `<br><br><br>`},
		{"repeat none", Repeat(-1, func(int) Attributed { return Br() }), ``},

		{"comment", Comment("a<b & c"), `<!--a&lt;b &amp; c-->`},
		{"doctype", Doctype{}, `<!doctype html>`},
		{"script is raw", Script("if (a < b && c) {}"), `<script>if (a < b && c) {}</script>`},
		{"script attributes", Script("x", Type("module")), `<script type="module">x</script>`},
		{"style sheet is raw", StyleSheet("a > b{color:red;}"), `<style>a > b{color:red;}</style>`},
		{"erased", Erase(P("x")), `<p>x</p>`},
		{"buffer node", &Buffer{b: []byte("<b>pre</b>")}, `<b>pre</b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderString(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLazyCombinators(t *testing.T) {
	called := false
	build := func() Attributed {
		called = true
		return P()
	}

	if got := RenderString(When(false, build)); got != "" || called {
		t.Errorf("When(false) = %q, called = %v", got, called)
	}
	if got := RenderString(When(true, build)); got != "<p></p>" || !called {
		t.Errorf("When(true) = %q, called = %v", got, called)
	}

	calls := ""
	then := func() Attributed { calls += "then"; return P() }
	els := func() String { calls += "else"; return Text("no") }
	if got := RenderString(Branch(false, then, els)); got != "no" || calls != "else" {
		t.Errorf("Branch(false) = %q, calls = %q", got, calls)
	}
	if e := Branch(false, then, els); !e.IsSecond() {
		t.Error("Branch(false) should hold the second alternative")
	}
}

func TestEraseIsIdempotent(t *testing.T) {
	once := Erase(P())
	twice := Erase(once)
	if _, nested := twice.Unwrap().(AnyNode); nested {
		t.Error("Erase wrapped an AnyNode again")
	}
	if RenderString(once) != RenderString(twice) {
		t.Error("erasing twice changed the output")
	}
}

func TestOptionalGet(t *testing.T) {
	if _, ok := Nothing[String]().Get(); ok {
		t.Error("Nothing().Get() reported a value")
	}
	n, ok := Some(Text("x")).Get()
	if !ok || RenderString(n) != "x" {
		t.Errorf("Some().Get() = %q, %v", RenderString(n), ok)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	tree := Div(Class("card"),
		H1("Title"),
		WithAttribute(Seq(P("a"), P("b")), AddClass("row")),
		P(Span("x")).Style("color", "red"),
	)

	first := RenderString(tree)
	second := RenderString(tree)
	if first != second {
		t.Errorf("renders differ:\n%s\n%s", first, second)
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = RenderString(tree)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if got != first {
			t.Errorf("goroutine %d rendered %q", i, got)
		}
	}
}

func TestDeepTree(t *testing.T) {
	var n Node = Text("leaf")
	for i := 0; i < 500; i++ {
		n = Div(n)
	}
	got := RenderString(n)
	if !strings.HasPrefix(got, strings.Repeat("<div>", 500)+"leaf") {
		t.Errorf("unexpected prefix: %.40q", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("</div>", 500)) {
		t.Errorf("unexpected suffix")
	}
}
