package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/style"
)

func TestOpenTelemetryMiddleware_RecordsSpan(t *testing.T) {
	tp := newRecordingProvider()
	var inside trace.Span

	r := render.NewRenderer(render.Config{
		Policy: style.Grouped,
		Middleware: []render.Middleware{
			OpenTelemetry(
				WithTracerProvider(tp),
				WithAttributeExtractor(func(context.Context, *render.Operation) []attribute.KeyValue {
					return []attribute.KeyValue{attribute.String("test.attr", "ok")}
				}),
			),
			render.MiddlewareFunc(func(ctx context.Context, op *render.Operation, next func(context.Context) error) error {
				inside = SpanFromContext(ctx)
				return next(ctx)
			}),
		},
	})

	ctx := render.WithName(context.Background(), "/home")
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, html.P().Style("color", "red")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := tp.tracer.recorded()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	span := spans[0]

	if span.name != "markup.render fragment" {
		t.Errorf("span name = %q", span.name)
	}
	if inside != trace.Span(span) {
		t.Error("inner middleware did not see the render span")
	}
	if !span.ended || span.status != codes.Ok {
		t.Errorf("span ended=%v status=%v", span.ended, span.status)
	}

	checks := map[string]string{
		"markup.name":   "/home",
		"markup.kind":   "fragment",
		"markup.policy": "grouped",
		"test.attr":     "ok",
	}
	for key, want := range checks {
		if v, ok := span.attr(key); !ok || v.AsString() != want {
			t.Errorf("attribute %s = %v, want %q", key, v.Emit(), want)
		}
	}
	if v, ok := span.attr("markup.classes"); !ok || v.AsInt64() != 1 {
		t.Errorf("markup.classes = %v", v.Emit())
	}
	if v, ok := span.attr("markup.bytes"); !ok || v.AsInt64() != int64(buf.Len()) {
		t.Errorf("markup.bytes = %v, want %d", v.Emit(), buf.Len())
	}
}

func TestOpenTelemetryMiddleware_RecordsError(t *testing.T) {
	tp := newRecordingProvider()
	wantErr := errors.New("boom")

	err := OpenTelemetry(WithTracerProvider(tp)).Handle(context.Background(), &render.Operation{Kind: render.KindDocument},
		func(context.Context) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}

	span := tp.tracer.recorded()[0]
	if span.status != codes.Error {
		t.Errorf("status = %v, want Error", span.status)
	}
	if len(span.errs) != 1 || !errors.Is(span.errs[0], wantErr) {
		t.Errorf("recorded errors = %v", span.errs)
	}
}

func TestOpenTelemetryMiddleware_FilterSkipsTracing(t *testing.T) {
	tp := newRecordingProvider()
	mw := OpenTelemetry(
		WithTracerProvider(tp),
		WithFilter(func(op *render.Operation) bool { return op.Kind == render.KindDocument }),
	)

	nextCalled := false
	err := mw.Handle(context.Background(), &render.Operation{Kind: render.KindFragment}, func(ctx context.Context) error {
		nextCalled = true
		if SpanFromContext(ctx) != nil {
			t.Error("expected no span when filter skips tracing")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if n := len(tp.tracer.recorded()); n != 0 {
		t.Errorf("recorded %d spans, want 0", n)
	}
}

func TestSpanFromContext_NoSpan(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Fatal("expected nil span when none is stored")
	}
}
