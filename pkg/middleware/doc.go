// Package middleware provides render middleware for observability.
//
// This package includes:
//   - OpenTelemetry tracing of every render
//   - Prometheus metrics for render counts, durations, output size and
//     generated classes
//   - structured logging with a per-render ID
//
// All three return render.Middleware and are installed on a Renderer:
//
//	r := render.NewRenderer(render.Config{
//	    Middleware: []render.Middleware{
//	        middleware.Logging(slog.Default()),
//	        middleware.OpenTelemetry(),
//	        middleware.Prometheus(middleware.WithNamespace("site")),
//	    },
//	})
//
// # OpenTelemetry
//
// Spans are named "markup.render <kind>" and carry the render name, kind,
// style policy, and after completion the byte and class counts. The tracer
// comes from the global provider unless WithTracerProvider is given:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-site"),
//	    middleware.WithFilter(func(op *render.Operation) bool {
//	        return op.Kind == render.KindDocument
//	    }),
//	)
//
// # Prometheus Metrics
//
// Metrics collected (with the default "markup" namespace):
//   - markup_renders_total: renders by kind and status
//   - markup_render_duration_seconds: render duration by kind
//   - markup_render_bytes: output size by kind
//   - markup_generated_classes_total: class names handed out
//   - markup_render_errors_total: failed renders by kind and error type
//
// Expose them with promhttp:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # Logging
//
// Logging attaches a random render ID to the context (see RenderID) and
// logs each render at debug level, failures at error level.
package middleware
