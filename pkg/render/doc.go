// Package render runs html trees through a configurable pipeline and
// writes the result to an io.Writer.
//
// A Renderer wraps the plain entry points of package html with what a
// server or build tool needs around them:
//
//   - a default style policy for fragments, with the stylesheet emitted
//     ahead of the markup
//   - context cancellation, checked on every write
//   - a Middleware chain that observes each render as an Operation
//     (bytes written, classes generated, stylesheet size)
//
// # Basic Usage
//
//	r := render.NewRenderer(render.Config{})
//	err := r.Render(ctx, w, html.Div(html.Class("card"), "Hello"))
//
// # Documents
//
//	doc := html.NewDocument(head, body, style.Grouped)
//	err := r.RenderDocument(ctx, w, doc)
//
// # Middleware
//
// Middleware wraps the render call the same way HTTP middleware wraps a
// handler:
//
//	r := render.NewRenderer(render.Config{
//	    Middleware: []render.Middleware{
//	        middleware.Logging(logger),
//	        middleware.Prometheus(),
//	    },
//	})
package render
