package html

import (
	"errors"
	"strings"
	"testing"
)

func TestStringInterpolation(t *testing.T) {
	s := Text("&Hello<, ").
		Append("Erik&").
		Append("! ").
		Embed(P()).
		AppendRaw(" li&&eral ").
		EmbedRaw(P())

	want := `&amp;Hello&lt;, Erik&amp;! &lt;p>&lt;/p> li&&eral <p></p>`
	if got := RenderString(s); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringEscaping(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"markup in text", Text("<p></p>"), `&lt;p>&lt;/p>`},
		{"greater than kept", Text("a > b"), `a > b`},
		{"quotes kept in text", Text(`"it's"`), `"it's"`},
		{"multibyte", Text("héllo <ü> 日本"), `héllo &lt;ü> 日本`},
		{"raw", Raw("<b>&</b>"), `<b>&</b>`},
		{"formatted", Textf("%d < %s", 1, "two"), `1 &lt; two`},
		{"embedded attributes", Text("").Embed(P(Class("x"))), `&lt;p class="x">&lt;/p>`},
		{"embedded text escaped twice", Text("").Embed(Text("&")), `&amp;amp;`},
		{"concat", Text("a&").Concat(Raw("&b")), `a&amp;&b`},
		{"zero value", String{}, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderString(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringAppendDoesNotShare(t *testing.T) {
	base := Text("a")
	x := base.Append("b")
	y := base.Append("c")

	if got := RenderString(base); got != "a" {
		t.Errorf("base = %q", got)
	}
	if got := RenderString(x); got != "ab" {
		t.Errorf("x = %q", got)
	}
	if got := RenderString(y); got != "ac" {
		t.Errorf("y = %q", got)
	}
	if !(String{}).IsEmpty() || base.IsEmpty() {
		t.Error("IsEmpty() wrong")
	}
}

func TestEscapeFunctions(t *testing.T) {
	if got := EscapeText(`a&b<c>d"e'`); got != `a&amp;b&lt;c>d"e'` {
		t.Errorf("EscapeText() = %q", got)
	}
	if got := EscapeAttribute(`a&b<c>"'`); got != `a&amp;b<c>&quot;&#39;` {
		t.Errorf("EscapeAttribute() = %q", got)
	}
	if got := EscapeText(""); got != "" {
		t.Errorf("EscapeText(\"\") = %q", got)
	}
}

type failingWriter struct {
	limit int
	wrote strings.Builder
}

var errFull = errors.New("writer full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.wrote.Len()+len(p) > w.limit {
		return 0, errFull
	}
	return w.wrote.Write(p)
}

func TestRenderTo(t *testing.T) {
	var out strings.Builder
	if err := RenderTo(&out, Div(Class("x"), "hi")); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if out.String() != `<div class="x">hi</div>` {
		t.Errorf("RenderTo() wrote %q", out.String())
	}
}

func TestRenderToStopsOnWriteError(t *testing.T) {
	w := &failingWriter{limit: 8}
	tree := Div(Repeat(100, func(int) Attributed { return P("paragraph") }))

	err := RenderTo(w, tree)
	if !errors.Is(err, errFull) {
		t.Fatalf("RenderTo() error = %v, want %v", err, errFull)
	}
	if w.wrote.Len() > 8 {
		t.Errorf("wrote %d bytes past the failure", w.wrote.Len())
	}
}

func TestAbortFromCustomNode(t *testing.T) {
	boom := errors.New("boom")
	node := Seq(P(), nodeFunc(func(Sink, *Context) { Abort(boom) }), P())

	var b Buffer
	if err := RenderInto(&b, node); !errors.Is(err, boom) {
		t.Fatalf("RenderInto() error = %v, want boom", err)
	}
	if b.String() != "<p></p>" {
		t.Errorf("output = %q", b.String())
	}
}

func TestOtherPanicsPropagate(t *testing.T) {
	defer func() {
		if r := recover(); r != "bad" {
			t.Errorf("recovered %v, want bad", r)
		}
	}()
	_ = RenderInto(&Buffer{}, nodeFunc(func(Sink, *Context) { panic("bad") }))
	t.Error("panic was swallowed")
}

type nodeFunc func(Sink, *Context)

func (f nodeFunc) Render(s Sink, ctx *Context) { f(s, ctx) }
