package html

import "io"

// Sink receives rendered bytes. Sinks have no error results: a sink that
// can fail calls Abort, which stops the walk and makes the enclosing
// RenderInto or RenderTo call return the error.
type Sink interface {
	Append(p []byte)
	AppendByte(c byte)
	AppendString(s string)
}

// Buffer is a growable in-memory Sink. The zero value is ready to use.
//
// A Buffer is also a Node that renders its bytes verbatim, which lets
// pre-rendered output be placed back into a tree.
type Buffer struct {
	b []byte
}

// Append implements Sink.
func (b *Buffer) Append(p []byte) { b.b = append(b.b, p...) }

// AppendByte implements Sink.
func (b *Buffer) AppendByte(c byte) { b.b = append(b.b, c) }

// AppendString implements Sink.
func (b *Buffer) AppendString(s string) { b.b = append(b.b, s...) }

// Bytes returns the buffered bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.b }

// String returns the buffered bytes as a string.
func (b *Buffer) String() string { return string(b.b) }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.b) }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() { b.b = b.b[:0] }

// Render implements Node.
func (b *Buffer) Render(s Sink, _ *Context) {
	if b != nil {
		s.Append(b.b)
	}
}

// SinkFunc adapts a function to Sink. Every write is delivered as a byte
// slice that is only valid for the duration of the call.
type SinkFunc func(p []byte)

// Append implements Sink.
func (f SinkFunc) Append(p []byte) { f(p) }

// AppendByte implements Sink.
func (f SinkFunc) AppendByte(c byte) { f([]byte{c}) }

// AppendString implements Sink.
func (f SinkFunc) AppendString(s string) { f([]byte(s)) }

// WriterSink streams rendered bytes to an io.Writer. The first write error
// aborts the render.
type WriterSink struct {
	w   io.Writer
	n   int64
	err error
	one [1]byte
}

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Append implements Sink.
func (s *WriterSink) Append(p []byte) {
	if s.err != nil || len(p) == 0 {
		return
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		s.err = err
		Abort(err)
	}
}

// AppendByte implements Sink.
func (s *WriterSink) AppendByte(c byte) {
	s.one[0] = c
	s.Append(s.one[:])
}

// AppendString implements Sink.
func (s *WriterSink) AppendString(str string) {
	if sw, ok := s.w.(io.StringWriter); ok {
		if s.err != nil || len(str) == 0 {
			return
		}
		n, err := sw.WriteString(str)
		s.n += int64(n)
		if err != nil {
			s.err = err
			Abort(err)
		}
		return
	}
	s.Append([]byte(str))
}

// Written returns the number of bytes successfully written.
func (s *WriterSink) Written() int64 { return s.n }

// Err returns the first write error, if any.
func (s *WriterSink) Err() error { return s.err }

// abortError carries a sink failure up the render walk.
type abortError struct {
	err error
}

// Abort stops the render in progress. The enclosing RenderInto, RenderWith
// or RenderTo call returns err. Abort must only be called from within a
// render.
func Abort(err error) {
	panic(abortError{err: err})
}

// recoverAbort turns an Abort panic back into an error. Other panics are
// re-raised.
func recoverAbort(errp *error) {
	if r := recover(); r != nil {
		if a, ok := r.(abortError); ok {
			*errp = a.err
			return
		}
		panic(r)
	}
}
