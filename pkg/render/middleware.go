package render

import "context"

// Middleware wraps a render. Handle must call next at most once and
// should return its error.
type Middleware interface {
	Handle(ctx context.Context, op *Operation, next func(context.Context) error) error
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(ctx context.Context, op *Operation, next func(context.Context) error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, op *Operation, next func(context.Context) error) error {
	return f(ctx, op, next)
}

// chain runs final inside mw, the first middleware outermost.
func chain(ctx context.Context, op *Operation, mw []Middleware, final func(context.Context) error) error {
	if len(mw) == 0 {
		return final(ctx)
	}
	return mw[0].Handle(ctx, op, func(ctx context.Context) error {
		return chain(ctx, op, mw[1:], final)
	})
}
