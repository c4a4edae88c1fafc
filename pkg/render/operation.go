package render

import (
	"context"
	"time"

	"github.com/vango-dev/markup/pkg/style"
)

// Kind distinguishes the render entry points.
type Kind uint8

const (
	// KindFragment is a tree rendered with Renderer.Render.
	KindFragment Kind = iota
	// KindDocument is a full page rendered with Renderer.RenderDocument.
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindFragment:
		return "fragment"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Operation describes one render call. Middleware receives it before the
// render starts; the counters are filled in by the time next returns.
type Operation struct {
	// Name labels the render, for example a page path. Set with WithName.
	Name string
	Kind Kind

	// Policy is the style policy in effect. Documents with an explicit
	// generator report the policy they were created with.
	Policy style.Policy

	Started time.Time

	// Bytes is the number of bytes written to the destination.
	Bytes int64

	// Classes is the number of class names handed out by the generator,
	// counting repeats.
	Classes int

	// StylesheetBytes is the size of the generated stylesheet.
	StylesheetBytes int
}

// Duration returns the time elapsed since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.Started)
}

type nameKey struct{}

// WithName returns a context that labels renders with name.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameKey{}, name)
}

// NameFromContext returns the render name stored by WithName.
func NameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(nameKey{}).(string)
	return name, ok
}

// countingGenerator records generator use on an Operation.
type countingGenerator struct {
	gen style.Generator
	op  *Operation
}

func (g countingGenerator) Generate(decls []style.Declaration) []string {
	classes := g.gen.Generate(decls)
	g.op.Classes += len(classes)
	return classes
}

func (g countingGenerator) Stylesheet() string {
	sheet := g.gen.Stylesheet()
	g.op.StylesheetBytes = len(sheet)
	return sheet
}
