package html

import "github.com/vango-dev/markup/pkg/style"

// Document renders a complete page:
//
//	<!doctype html><html><head>HEAD<style>SHEET</style></head><body>BODY</body></html>
//
// When a style generator is in effect the body is rendered first into a
// buffer so that the stylesheet it produces can be placed in the head. The
// style element is omitted when the stylesheet is empty. Under style.None
// the body streams straight to the sink with inline styles.
type Document struct {
	Head Node
	Body Node

	// Styles selects the generator created for each render. Ignored when
	// Generator is set.
	Styles style.Policy

	// Generator, if set, is used instead of a fresh one per render. It must
	// not be shared by documents rendered concurrently if their stylesheets
	// are expected to be independent.
	Generator style.Generator

	// Lang sets the lang attribute of the html element.
	Lang string
}

// NewDocument creates a document using the given style policy.
func NewDocument(head, body Node, policy style.Policy) Document {
	return Document{Head: head, Body: body, Styles: policy}
}

func (d Document) generator() style.Generator {
	if d.Generator != nil {
		return d.Generator
	}
	return d.Styles.NewGenerator()
}

// Render implements Node. Pending attributes apply to the html element.
func (d Document) Render(s Sink, ctx *Context) {
	prevStyles := ctx.styles
	defer func() { ctx.styles = prevStyles }()

	var body Node = d.Body
	var sheet string
	if gen := d.generator(); gen != nil {
		pending := ctx.attrs
		ctx.attrs = attrMap{}
		ctx.styles = gen

		buf := new(Buffer)
		renderNode(buf, ctx, d.Body)
		sheet = gen.Stylesheet()
		body = buf

		ctx.attrs = pending
	}

	// The head never contributes to the stylesheet; styles in it are inline.
	ctx.styles = nil

	head := Tuple{d.Head}
	if sheet != "" {
		head = append(head, Element{Tag: "style", Child: Raw(sheet)})
	}

	var root Node = Element{Tag: "html", Child: Tuple{
		Element{Tag: "head", Child: head},
		Element{Tag: "body", Child: body},
	}}
	if d.Lang != "" {
		root = WithAttribute(root, Lang(d.Lang))
	}

	Doctype{}.Render(s, ctx)
	root.Render(s, ctx)
}
