// Package html builds markup as a tree of typed nodes and serializes it to
// bytes in a single depth-first walk.
//
// # Nodes
//
// Every node implements Node. The built-in variants are Empty, String
// (escaped or raw text, optionally interleaved with embedded nodes),
// Element, VoidElement, Tuple, Array, Either, Optional, Attributed, Styled,
// Document, Comment, Doctype and AnyNode.
//
// Trees are built with the tag factories and combinators:
//
//	page := html.Div(html.Class("card"),
//	    html.H1("Title"),
//	    html.If(loggedIn, html.P("Welcome back")),
//	    html.Each(items, func(it Item) html.Attributed {
//	        return html.Li(it.Name)
//	    }),
//	)
//
// # Attributes
//
// Attributes are not stored on elements. An Attributed node writes its
// attributes into the render Context, and the nearest Element below it
// consumes them when writing its opening tag. Each Attribute carries a
// MergeMode deciding what happens when the name is already pending.
// Decorating a Tuple decorates each of its top-level children.
//
// # Styles
//
// A Styled node carries style declarations. When the Context has a style
// generator the declarations become classes; otherwise they are written to
// the style attribute inline.
//
// # Rendering
//
// Rendering never mutates a node, so a tree can be rendered more than once.
// Text is escaped for & and < only; attribute values for &, " and '.
//
//	out := html.Render(page)
//	doc := html.RenderDocument(head, body, style.Grouped)
package html
