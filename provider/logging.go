package provider

import (
	"context"
	"time"

	"github.com/penflow/llmkit/logger"
)

// WithLogging logs every completion call with the provider name, wall-clock
// duration, and outcome. Failures log at error level with the error text;
// successes log at debug level so production logs stay quiet.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(next RequestResponse[I, O]) RequestResponse[I, O] {
		return &decorated[I, O]{
			RequestResponse: next,
			execute: func(ctx context.Context, input I) (O, error) {
				start := time.Now()
				output, err := next.Execute(ctx, input)
				fields := map[string]any{
					"provider":    next.Name(),
					"duration_ms": time.Since(start).Milliseconds(),
				}
				if err != nil {
					fields["error"] = err.Error()
					log.Error("completion call failed", fields)
					return output, err
				}
				log.Debug("completion call done", fields)
				return output, nil
			},
		}
	}
}
