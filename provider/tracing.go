package provider

import (
	"context"

	"github.com/penflow/llmkit/observability"
)

// WithTracing opens a span around every completion call. The span is named
// "<serviceName>.<provider>" and records the provider name as an attribute;
// failures mark the span as errored.
func WithTracing[I, O any](serviceName string) Middleware[I, O] {
	return func(next RequestResponse[I, O]) RequestResponse[I, O] {
		return &decorated[I, O]{
			RequestResponse: next,
			execute: func(ctx context.Context, input I) (O, error) {
				ctx, span := observability.StartSpan(ctx, serviceName+"."+next.Name())
				defer span.End()

				observability.SetSpanAttribute(ctx, observability.AttrServiceName, serviceName)
				observability.SetSpanAttribute(ctx, observability.AttrProviderName, next.Name())

				output, err := next.Execute(ctx, input)
				if err != nil {
					observability.SetSpanError(ctx, err)
				}
				return output, err
			},
		}
	}
}
