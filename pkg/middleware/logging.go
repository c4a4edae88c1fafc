package middleware

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vango-dev/markup/pkg/render"
)

type renderIDKey struct{}

// RenderID returns the ID Logging assigned to the render running with ctx.
func RenderID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(renderIDKey{}).(string)
	return id, ok
}

// Logging creates middleware that logs every render. A nil logger uses
// slog.Default().
func Logging(logger *slog.Logger) render.Middleware {
	return render.MiddlewareFunc(func(ctx context.Context, op *render.Operation, next func(context.Context) error) error {
		log := logger
		if log == nil {
			log = slog.Default()
		}

		id := uuid.NewString()
		ctx = context.WithValue(ctx, renderIDKey{}, id)
		log = log.With(
			slog.String("render_id", id),
			slog.String("name", op.Name),
			slog.String("kind", op.Kind.String()),
		)

		err := next(ctx)
		if err != nil {
			log.ErrorContext(ctx, "render failed",
				slog.Any("error", err),
				slog.Duration("duration", op.Duration()),
			)
			return err
		}

		log.DebugContext(ctx, "rendered",
			slog.Int64("bytes", op.Bytes),
			slog.Int("classes", op.Classes),
			slog.Int("stylesheet_bytes", op.StylesheetBytes),
			slog.Duration("duration", op.Duration()),
		)
		return nil
	})
}
