// Package interop converts between markup trees and gomponents nodes.
//
// A gomponents node embedded with Gomponents renders its own bytes as-is:
// it cannot consume attributes pending from an enclosing decorator, and
// its styles do not reach the stylesheet generator.
package interop

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/vango-dev/markup/pkg/html"
)

// Gomponents wraps a gomponents node so it can appear in a markup tree.
// A render error from n aborts the enclosing render.
func Gomponents(n g.Node) html.AnyNode {
	return html.Erase(gomponentsNode{n: n})
}

type gomponentsNode struct {
	n g.Node
}

func (gn gomponentsNode) Render(s html.Sink, _ *html.Context) {
	if gn.n == nil {
		return
	}
	if err := gn.n.Render(sinkWriter{s}); err != nil {
		html.Abort(err)
	}
}

type sinkWriter struct {
	s html.Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	w.s.Append(p)
	return len(p), nil
}

func (w sinkWriter) WriteString(str string) (int, error) {
	w.s.AppendString(str)
	return len(str), nil
}

// Node wraps a markup tree as a gomponents node. Styles render inline,
// since gomponents has no place for a stylesheet.
func Node(n html.Node) g.Node {
	return markupNode{n: n}
}

type markupNode struct {
	n html.Node
}

func (mn markupNode) Render(w io.Writer) error {
	return html.RenderTo(w, mn.n)
}
