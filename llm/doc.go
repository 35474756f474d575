// Package llm provides a provider-agnostic client for HTTP chat-completion
// APIs, with buffered and incremental (streamed) generation.
//
// The package follows the dialect pattern — similar to how database/sql
// works with driver packages:
//   - Universal types: [CompletionRequest], [CompletionResponse], [StreamChunk]
//   - [Dialect] interface: maps universal types to/from a provider's wire format
//   - [Adapter]: binds one resolved [Config] and one Dialect to an HTTP client
//   - Dialect registry: [RegisterDialect] / [GetDialect] for config-driven selection
//   - Helpers: [Generate], [GenerateStream], [StreamFunc], [Collect]
//
// Import a dialect driver package for side-effect registration, then create
// an adapter:
//
//	import (
//	    "github.com/penflow/llmkit/llm"
//	    _ "github.com/penflow/llmkit/llm/openai" // registers "openai"
//	)
//
//	client, err := llm.New(llm.Config{
//	    Dialect: "openai",
//	    APIKey:  key,
//	})
//
//	text, err := llm.Generate(ctx, client, "Hello!")
//
// Construction fails fast when the API key is missing; no network call is
// ever attempted with an invalid configuration.
//
// Every error returned by an adapter is classified into one of four kinds
// (configuration, transport, HTTP status, protocol decode) so callers can
// implement their own retry policy. The adapter itself never retries and
// never logs.
package llm
