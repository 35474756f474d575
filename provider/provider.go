package provider

import "context"

// Provider is the base interface all providers implement.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable checks if the provider is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// Factory creates a provider instance from configuration.
type Factory[T Provider] func(cfg map[string]any) (T, error)

// RequestResponse represents a provider that takes one input and returns
// one output.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}

// Streamable represents a provider where the same input can produce either
// a complete response or a stream of chunks, controlled by a flag in the
// input. Chat completion is the canonical example.
//
// The chunk channel closes when the stream ends; mid-stream errors are
// delivered as chunk values.
type Streamable[I, O, C any] interface {
	RequestResponse[I, O]
	Stream(ctx context.Context, input I) (<-chan C, error)
}
