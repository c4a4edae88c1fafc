package html

import "fmt"

// String is a run of text segments. Each segment is literal text or an
// embedded node, and is either escaped or written raw.
//
// Appending returns a new String; the receiver is never modified, so a
// String may be shared and extended from several places.
type String struct {
	parts []part
}

type part struct {
	text   string
	node   Node
	escape bool
}

// Text returns escaped text.
func Text(s string) String {
	return String{parts: []part{{text: s, escape: true}}}
}

// Textf formats according to a format specifier and returns the result as
// escaped text.
func Textf(format string, args ...any) String {
	return Text(fmt.Sprintf(format, args...))
}

// Raw returns text written without escaping.
func Raw(s string) String {
	return String{parts: []part{{text: s}}}
}

// Append returns str followed by escaped text.
func (str String) Append(text string) String {
	return str.with(part{text: text, escape: true})
}

// AppendRaw returns str followed by unescaped text.
func (str String) AppendRaw(text string) String {
	return str.with(part{text: text})
}

// Embed returns str followed by n. The markup n produces is escaped as text,
// so Text("").Embed(P()) renders "&lt;p>&lt;/p>".
func (str String) Embed(n Node) String {
	return str.with(part{node: n, escape: true})
}

// EmbedRaw returns str followed by n rendered as markup.
func (str String) EmbedRaw(n Node) String {
	return str.with(part{node: n})
}

// Concat returns str followed by every segment of other.
func (str String) Concat(other String) String {
	parts := make([]part, 0, len(str.parts)+len(other.parts))
	parts = append(parts, str.parts...)
	return String{parts: append(parts, other.parts...)}
}

// IsEmpty reports whether str has no segments.
func (str String) IsEmpty() bool { return len(str.parts) == 0 }

func (str String) with(p part) String {
	parts := make([]part, len(str.parts), len(str.parts)+1)
	copy(parts, str.parts)
	return String{parts: append(parts, p)}
}

// Render implements Node. Text segments do not consume pending attributes;
// embedded nodes do.
func (str String) Render(s Sink, ctx *Context) {
	for _, p := range str.parts {
		switch {
		case p.node == nil && p.escape:
			appendEscaped(s, p.text, textEscape)
		case p.node == nil:
			appendRun(s, p.text)
		case p.escape:
			p.node.Render(escapingSink(s), ctx)
		default:
			p.node.Render(s, ctx)
		}
	}
}
