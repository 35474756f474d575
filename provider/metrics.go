package provider

import (
	"context"
	"time"

	"github.com/penflow/llmkit/observability"
)

// WithMetrics records a counter and a latency histogram for every completion
// call, labeled with the provider name and the given operation (for example
// "generate" or "stream"). Failures additionally bump the error counter.
func WithMetrics[I, O any](metrics *observability.Metrics, operation string) Middleware[I, O] {
	return func(next RequestResponse[I, O]) RequestResponse[I, O] {
		return &decorated[I, O]{
			RequestResponse: next,
			execute: func(ctx context.Context, input I) (O, error) {
				start := time.Now()
				output, err := next.Execute(ctx, input)

				status := "ok"
				if err != nil {
					status = "error"
					metrics.RecordError(ctx, operation, next.Name())
				}
				metrics.RecordOperation(ctx, next.Name(), operation, status, time.Since(start))
				return output, err
			},
		}
	}
}
