package provider

import "context"

// Middleware wraps a RequestResponse provider with cross-cutting behavior
// such as logging, tracing, or metrics. The wrapped provider delegates to
// the inner one for the actual work.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes middlewares into one. The first middleware is outermost:
// Chain(a, b, c)(p) behaves like a(b(c(p))).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(p RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			p = middlewares[i](p)
		}
		return p
	}
}

// decorated overrides Execute on a provider while keeping its identity and
// availability checks. All middlewares in this package are closures over it.
type decorated[I, O any] struct {
	RequestResponse[I, O]
	execute func(ctx context.Context, input I) (O, error)
}

func (d *decorated[I, O]) Execute(ctx context.Context, input I) (O, error) {
	return d.execute(ctx, input)
}
