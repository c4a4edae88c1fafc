package html

// Node is anything that can render itself into a Sink.
//
// Render must not modify the node; the same tree may be rendered again,
// including from several goroutines with separate contexts. Changes made to
// ctx must be undone before Render returns.
type Node interface {
	Render(s Sink, ctx *Context)
}

// renderNode renders n, treating nil as Empty.
func renderNode(s Sink, ctx *Context, n Node) {
	if n != nil {
		n.Render(s, ctx)
	}
}

// Empty renders nothing. It does not consume pending attributes.
type Empty struct{}

// Render implements Node.
func (Empty) Render(Sink, *Context) {}

// VoidElement is an element without content or closing tag, such as <br>.
// It consumes the pending attributes.
type VoidElement struct {
	Tag string
}

// Render implements Node.
func (e VoidElement) Render(s Sink, ctx *Context) {
	s.AppendByte('<')
	s.AppendString(e.Tag)
	for _, name := range ctx.attrs.names {
		s.AppendByte(' ')
		s.AppendString(name)
		if value := ctx.attrs.values[name]; value != "" {
			s.AppendString(`="`)
			appendEscaped(s, value, attrEscape)
			s.AppendByte('"')
		}
	}
	s.AppendByte('>')
}

// Element is a paired element. It writes the pending attributes into its
// opening tag and renders Child with none pending.
type Element struct {
	Tag   string
	Child Node
}

// Render implements Node.
func (e Element) Render(s Sink, ctx *Context) {
	VoidElement{Tag: e.Tag}.Render(s, ctx)

	pending := ctx.attrs
	ctx.attrs = attrMap{}
	renderNode(s, ctx, e.Child)
	ctx.attrs = pending

	s.AppendString("</")
	s.AppendString(e.Tag)
	s.AppendByte('>')
}

// Tuple renders its nodes in order. Every child sees the same pending
// attributes, so decorating a Tuple decorates each top-level child.
type Tuple []Node

// Render implements Node.
func (t Tuple) Render(s Sink, ctx *Context) {
	for _, n := range t {
		renderNode(s, ctx, n)
	}
}

// Array is a homogeneous Tuple.
type Array[T Node] []T

// Render implements Node.
func (a Array[T]) Render(s Sink, ctx *Context) {
	for _, n := range a {
		renderNode(s, ctx, n)
	}
}

// Either holds one of two nodes of possibly different types.
// The zero value holds the zero First.
type Either[T, F Node] struct {
	first  T
	second F
	isSec  bool
}

// First returns an Either holding n.
func First[T, F Node](n T) Either[T, F] {
	return Either[T, F]{first: n}
}

// Second returns an Either holding n.
func Second[T, F Node](n F) Either[T, F] {
	return Either[T, F]{second: n, isSec: true}
}

// IsSecond reports whether e holds the second alternative.
func (e Either[T, F]) IsSecond() bool { return e.isSec }

// Render implements Node.
func (e Either[T, F]) Render(s Sink, ctx *Context) {
	if e.isSec {
		renderNode(s, ctx, e.second)
		return
	}
	renderNode(s, ctx, e.first)
}

// Optional holds a node or nothing.
type Optional[T Node] struct {
	value T
	ok    bool
}

// Some returns an Optional holding n.
func Some[T Node](n T) Optional[T] {
	return Optional[T]{value: n, ok: true}
}

// Nothing returns an empty Optional.
func Nothing[T Node]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held node and whether there is one.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Render implements Node.
func (o Optional[T]) Render(s Sink, ctx *Context) {
	if o.ok {
		renderNode(s, ctx, o.value)
	}
}

// AnyNode hides the concrete type of a node, giving heterogeneous branches
// a common type.
type AnyNode struct {
	node Node
}

// Erase wraps n in an AnyNode. Erasing an AnyNode returns it unchanged.
func Erase(n Node) AnyNode {
	if a, ok := n.(AnyNode); ok {
		return a
	}
	return AnyNode{node: n}
}

// Unwrap returns the wrapped node.
func (a AnyNode) Unwrap() Node { return a.node }

// Render implements Node.
func (a AnyNode) Render(s Sink, ctx *Context) {
	renderNode(s, ctx, a.node)
}

// Comment renders an HTML comment. The text is escaped like element content.
type Comment string

// Render implements Node.
func (c Comment) Render(s Sink, _ *Context) {
	s.AppendString("<!--")
	appendEscaped(s, string(c), textEscape)
	s.AppendString("-->")
}

// Doctype renders the HTML5 doctype declaration.
type Doctype struct{}

// Render implements Node.
func (Doctype) Render(s Sink, _ *Context) {
	s.AppendString("<!doctype html>")
}
