package html

import (
	"strings"

	"github.com/vango-dev/markup/pkg/style"
)

// Attributed applies Attrs, in order, to the pending attributes seen by
// Content. The pending set is restored once Content has rendered.
type Attributed struct {
	Content Node
	Attrs   []Attribute
}

// WithAttribute wraps n in a new decorator. Decorators nest: the outer one
// applies first, so an inner ReplaceValue wins over an outer one.
func WithAttribute(n Node, attrs ...Attribute) Attributed {
	return Attributed{Content: n}.With(attrs...)
}

// With returns a copy of a with attrs appended. An attribute identical to
// one already present is skipped.
func (a Attributed) With(attrs ...Attribute) Attributed {
	out := make([]Attribute, len(a.Attrs), len(a.Attrs)+len(attrs))
	copy(out, a.Attrs)
next:
	for _, attr := range attrs {
		for _, have := range out {
			if have == attr {
				continue next
			}
		}
		out = append(out, attr)
	}
	a.Attrs = out
	return a
}

// Attr returns a copy of a that also replaces name with value.
func (a Attributed) Attr(name, value string) Attributed {
	return a.With(Attr(name, value))
}

// Style wraps a in a Styled node carrying one declaration.
func (a Attributed) Style(property, value string, opts ...style.Option) Styled {
	return WithStyle(a, style.Decl(property, value, opts...))
}

// Render implements Node.
func (a Attributed) Render(s Sink, ctx *Context) {
	if len(a.Attrs) == 0 {
		renderNode(s, ctx, a.Content)
		return
	}

	prev := ctx.attrs
	next := prev.clone()
	for _, attr := range a.Attrs {
		next.apply(attr)
	}
	ctx.attrs = next
	renderNode(s, ctx, a.Content)
	ctx.attrs = prev
}

// Styled attaches style declarations to the next element rendered.
//
// With a style generator in scope, the declarations are turned into
// classes merged into the class attribute. Without one, they are appended
// to the style attribute as "property: value;".
type Styled struct {
	Content Node
	Styles  []style.Declaration
}

// WithStyle wraps n in a Styled node.
func WithStyle(n Node, decls ...style.Declaration) Styled {
	return Styled{Content: n}.With(decls...)
}

// With returns a copy of st with decls appended, skipping declarations it
// already holds.
func (st Styled) With(decls ...style.Declaration) Styled {
	out := make([]style.Declaration, len(st.Styles), len(st.Styles)+len(decls))
	copy(out, st.Styles)
next:
	for _, d := range decls {
		for _, have := range out {
			if have == d {
				continue next
			}
		}
		out = append(out, d)
	}
	st.Styles = out
	return st
}

// Style returns a copy of st with one more declaration.
func (st Styled) Style(property, value string, opts ...style.Option) Styled {
	return st.With(style.Decl(property, value, opts...))
}

// Attr wraps st in an Attributed node setting name to value.
func (st Styled) Attr(name, value string) Attributed {
	return WithAttribute(st, Attr(name, value))
}

// Render implements Node.
func (st Styled) Render(s Sink, ctx *Context) {
	if len(st.Styles) == 0 {
		renderNode(s, ctx, st.Content)
		return
	}

	prev := ctx.attrs
	next := prev.clone()
	if ctx.styles == nil {
		var b strings.Builder
		old, _ := next.get("style")
		b.WriteString(old)
		for _, d := range st.Styles {
			b.WriteString(d.Inline())
		}
		next.set("style", b.String())
	} else if classes := ctx.styles.Generate(st.Styles); len(classes) > 0 {
		next.apply(MergeAttr("class", strings.Join(classes, " ")))
	}
	ctx.attrs = next
	renderNode(s, ctx, st.Content)
	ctx.attrs = prev
}
