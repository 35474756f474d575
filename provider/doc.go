// Package provider implements generic plumbing for swappable completion
// backends: a factory-based registry keyed by provider identifier, the
// capability interfaces the llm adapters satisfy, and opt-in middleware for
// callers that want instrumented clients.
//
// The package defines two interaction patterns:
//   - RequestResponse[I, O]: one input → one output (the buffered path)
//   - Streamable[I, O, C]: RequestResponse plus a channel of chunks
//
// # Middleware
//
// Middleware[I, O] wraps a RequestResponse provider. Use Chain to compose:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[In, Out](log),
//	    provider.WithTracing[In, Out]("my-service"),
//	)(rawProvider)
//
// The adapters themselves never log or trace; instrumentation is always an
// explicit wrapper chosen by the caller.
package provider
