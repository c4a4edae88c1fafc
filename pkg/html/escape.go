package html

// Escaping works on bytes. Every character that needs escaping is ASCII, so
// multi-byte UTF-8 sequences pass through untouched.

// textEscape returns the replacement for c in text content, or "".
// '>' is left alone; it is harmless in text.
func textEscape(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	}
	return ""
}

// attrEscape returns the replacement for c in a quoted attribute value,
// or "".
func attrEscape(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	}
	return ""
}

// appendEscaped writes p to s, replacing bytes for which replace returns a
// non-empty string. Unchanged runs are written in one call.
func appendEscaped[T string | []byte](s Sink, p T, replace func(byte) string) {
	last := 0
	for i := 0; i < len(p); i++ {
		r := replace(p[i])
		if r == "" {
			continue
		}
		appendRun(s, p[last:i])
		s.AppendString(r)
		last = i + 1
	}
	appendRun(s, p[last:])
}

func appendRun[T string | []byte](s Sink, run T) {
	if len(run) == 0 {
		return
	}
	switch v := any(run).(type) {
	case string:
		s.AppendString(v)
	case []byte:
		s.Append(v)
	}
}

// EscapeText returns s escaped for use as element content.
func EscapeText(s string) string {
	var b Buffer
	appendEscaped(&b, s, textEscape)
	return b.String()
}

// EscapeAttribute returns s escaped for use inside a double-quoted
// attribute value.
func EscapeAttribute(s string) string {
	var b Buffer
	appendEscaped(&b, s, attrEscape)
	return b.String()
}

// escapingSink escapes every write as text before passing it on.
func escapingSink(s Sink) SinkFunc {
	return func(p []byte) {
		appendEscaped(s, p, textEscape)
	}
}
