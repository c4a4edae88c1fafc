package html

import (
	"io"

	"github.com/vango-dev/markup/pkg/style"
)

// Render renders n into a new byte slice with inline styles.
//
// An error raised through Abort by a custom node is dropped along with the
// output produced after it; use RenderInto to observe it.
func Render(n Node) []byte {
	var b Buffer
	_ = RenderWith(&b, n, nil)
	return b.Bytes()
}

// RenderString is like Render but returns a string.
func RenderString(n Node) string {
	return string(Render(n))
}

// RenderInto renders n into s with inline styles.
func RenderInto(s Sink, n Node) error {
	return RenderWith(s, n, nil)
}

// RenderWith renders n into s with gen turning style declarations into
// classes. The caller retrieves the stylesheet from gen afterwards.
func RenderWith(s Sink, n Node, gen style.Generator) (err error) {
	defer recoverAbort(&err)
	renderNode(s, NewContext(gen), n)
	return nil
}

// RenderTo streams n to w. It returns the first write error.
func RenderTo(w io.Writer, n Node) error {
	return RenderInto(NewWriterSink(w), n)
}

// RenderDocument renders a complete document with the given style policy.
func RenderDocument(head, body Node, policy style.Policy) []byte {
	return Render(NewDocument(head, body, policy))
}
