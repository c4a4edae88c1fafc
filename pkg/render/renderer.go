package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/style"
)

// Config configures a Renderer.
type Config struct {
	// Policy is the style policy for fragments. The zero value, style.None,
	// renders styles inline. Documents use their own policy.
	Policy style.Policy

	// ReadableClassNames names generated classes after their property.
	// Should only be used in development.
	ReadableClassNames bool

	// Middleware wraps every render, the first entry outermost.
	Middleware []Middleware
}

// Renderer renders trees to writers. It is safe for concurrent use; each
// call gets its own render context and generator.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.config }

// With returns a renderer that also runs mw, inside the existing chain.
func (r *Renderer) With(mw ...Middleware) *Renderer {
	config := r.config
	config.Middleware = append(append([]Middleware(nil), r.config.Middleware...), mw...)
	return &Renderer{config: config}
}

// Render writes n to w. With a style policy other than None the
// generated stylesheet is written first, as a style element.
func (r *Renderer) Render(ctx context.Context, w io.Writer, n html.Node) error {
	op := r.newOperation(ctx, KindFragment, r.config.Policy)
	return r.run(ctx, op, func(ctx context.Context) error {
		cw := &countingWriter{ctx: ctx, w: w, op: op}

		gen := r.newGenerator(op.Policy)
		if gen == nil {
			return html.RenderTo(cw, n)
		}

		counted := countingGenerator{gen: gen, op: op}
		var buf html.Buffer
		if err := html.RenderWith(&buf, n, counted); err != nil {
			return err
		}
		if sheet := counted.Stylesheet(); sheet != "" {
			if err := html.RenderTo(cw, html.StyleSheet(sheet)); err != nil {
				return err
			}
		}
		_, err := cw.Write(buf.Bytes())
		return err
	})
}

// RenderString renders n to a string.
func (r *Renderer) RenderString(ctx context.Context, n html.Node) (string, error) {
	var b strings.Builder
	if err := r.Render(ctx, &b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderDocument writes a complete page to w.
func (r *Renderer) RenderDocument(ctx context.Context, w io.Writer, doc html.Document) error {
	op := r.newOperation(ctx, KindDocument, doc.Styles)
	return r.run(ctx, op, func(ctx context.Context) error {
		gen := doc.Generator
		if gen == nil {
			gen = r.newGenerator(doc.Styles)
		}
		if gen != nil {
			doc.Generator = countingGenerator{gen: gen, op: op}
		}
		return html.RenderTo(&countingWriter{ctx: ctx, w: w, op: op}, doc)
	})
}

func (r *Renderer) newOperation(ctx context.Context, kind Kind, policy style.Policy) *Operation {
	name, ok := NameFromContext(ctx)
	if !ok {
		name = kind.String()
	}
	return &Operation{Name: name, Kind: kind, Policy: policy, Started: time.Now()}
}

func (r *Renderer) newGenerator(policy style.Policy) style.Generator {
	var opts []style.ClassOption
	if r.config.ReadableClassNames {
		opts = append(opts, style.WithReadableNames())
	}
	return policy.NewGenerator(opts...)
}

func (r *Renderer) run(ctx context.Context, op *Operation, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := chain(ctx, op, r.config.Middleware, fn); err != nil {
		return fmt.Errorf("render %s %q: %w", op.Kind, op.Name, err)
	}
	return nil
}

// countingWriter counts written bytes and fails once ctx is done.
type countingWriter struct {
	ctx context.Context
	w   io.Writer
	op  *Operation
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if err := cw.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := cw.w.Write(p)
	cw.op.Bytes += int64(n)
	return n, err
}
