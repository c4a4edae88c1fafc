package html

import "github.com/vango-dev/markup/pkg/style"

// factoryArgs collects the arguments accepted by the element factories.
type factoryArgs struct {
	children []Node
	attrs    []Attribute
	styles   []style.Declaration
}

// collect sorts factory arguments into children, attributes and styles.
//
// Accepted: Node, []Node, string (escaped text), Attribute, []Attribute,
// style.Declaration and []style.Declaration. nil is skipped so arguments
// can be conditional. Other values are ignored.
func collect(args []any) factoryArgs {
	var p factoryArgs
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attribute:
			p.attrs = append(p.attrs, v)
		case []Attribute:
			p.attrs = append(p.attrs, v...)
		case style.Declaration:
			p.styles = append(p.styles, v)
		case []style.Declaration:
			p.styles = append(p.styles, v...)
		case string:
			p.children = append(p.children, Text(v))
		case []Node:
			for _, n := range v {
				if n != nil {
					p.children = append(p.children, n)
				}
			}
		case Node:
			p.children = append(p.children, v)
		}
	}
	return p
}

// decorate wraps n with the collected styles and attributes. Attributes
// apply before styles, so a Class argument and a generated class end up
// merged in that order.
func (p factoryArgs) decorate(n Node) Attributed {
	if len(p.styles) > 0 {
		n = WithStyle(n, p.styles...)
	}
	return WithAttribute(n, p.attrs...)
}

// Tag creates an element with the given tag name.
func Tag(name string, args ...any) Attributed {
	p := collect(args)
	return p.decorate(Element{Tag: name, Child: Seq(p.children...)})
}

// VoidTag creates a void element with the given tag name. Child arguments
// are ignored.
func VoidTag(name string, args ...any) Attributed {
	return collect(args).decorate(VoidElement{Tag: name})
}

// Group renders its arguments in sequence without a wrapper element.
// Attribute and style arguments decorate every top-level child.
func Group(args ...any) Node {
	p := collect(args)
	if len(p.attrs) == 0 && len(p.styles) == 0 {
		return Seq(p.children...)
	}
	return p.decorate(Seq(p.children...))
}

// Seq combines nodes: none gives Empty, one gives the node itself, more give
// a Tuple.
func Seq(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		return Empty{}
	case 1:
		if nodes[0] == nil {
			return Empty{}
		}
		return nodes[0]
	default:
		return append(Tuple(nil), nodes...)
	}
}

// If returns n when cond holds.
func If[T Node](cond bool, n T) Optional[T] {
	if cond {
		return Some(n)
	}
	return Nothing[T]()
}

// Unless returns n when cond does not hold.
func Unless[T Node](cond bool, n T) Optional[T] {
	return If(!cond, n)
}

// When is like If, but fn is only called when cond holds.
func When[T Node](cond bool, fn func() T) Optional[T] {
	if cond {
		return Some(fn())
	}
	return Nothing[T]()
}

// Maybe returns the node p points to, or nothing when p is nil.
func Maybe[T Node](p *T) Optional[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Some(*p)
}

// IfElse returns then when cond holds and otherwise els.
func IfElse[T, F Node](cond bool, then T, els F) Either[T, F] {
	if cond {
		return First[T, F](then)
	}
	return Second[T](els)
}

// Branch is like IfElse, but only the chosen function is called.
func Branch[T, F Node](cond bool, then func() T, els func() F) Either[T, F] {
	if cond {
		return First[T, F](then())
	}
	return Second[T](els())
}

// Case is one arm of a Switch.
type Case[K comparable] struct {
	Value     K
	Node      Node
	IsDefault bool
}

// CaseOf creates a Switch arm matching value.
func CaseOf[K comparable](value K, n Node) Case[K] {
	return Case[K]{Value: value, Node: n}
}

// Default creates the Switch arm used when nothing else matches.
func Default[K comparable](n Node) Case[K] {
	return Case[K]{Node: n, IsDefault: true}
}

// Switch returns the node of the first arm matching value, else the
// default arm, else Empty.
func Switch[K comparable](value K, cases ...Case[K]) AnyNode {
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return Erase(c.Node)
		}
	}
	for _, c := range cases {
		if c.IsDefault {
			return Erase(c.Node)
		}
	}
	return Erase(Empty{})
}

// Each maps items to nodes.
func Each[E any, T Node](items []E, fn func(E) T) Array[T] {
	out := make(Array[T], 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// Range maps items to nodes, passing each item's index.
func Range[E any, T Node](items []E, fn func(item E, index int) T) Array[T] {
	out := make(Array[T], 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat creates n nodes using fn.
func Repeat[T Node](n int, fn func(i int) T) Array[T] {
	if n <= 0 {
		return nil
	}
	out := make(Array[T], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
