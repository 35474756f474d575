package llm

import (
	"context"
	"strings"

	"github.com/penflow/llmkit/provider"
)

// Generate sends a single prompt and returns the full generated text.
// It accepts any RequestResponse provider, so it works with wrapped or
// composed adapters (middleware chains, instrumented clients).
func Generate(ctx context.Context, p provider.RequestResponse[CompletionRequest, CompletionResponse], prompt string) (string, error) {
	resp, err := p.Execute(ctx, CompletionRequest{Messages: UserMessage(prompt)})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateStream sends a single prompt and returns the fragment channel.
func GenerateStream(ctx context.Context, p provider.Streamable[CompletionRequest, CompletionResponse, StreamChunk], prompt string) (<-chan StreamChunk, error) {
	return p.Stream(ctx, CompletionRequest{Messages: UserMessage(prompt)})
}

// StreamFunc streams a single prompt, invoking fn for every fragment as it
// arrives, and returns the assembled text. Fragments delivered before a
// mid-stream error are included in the returned text alongside the error.
func StreamFunc(ctx context.Context, p provider.Streamable[CompletionRequest, CompletionResponse, StreamChunk], prompt string, fn func(delta string)) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := p.Stream(ctx, CompletionRequest{Messages: UserMessage(prompt)})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			return sb.String(), chunk.Err
		}
		if fn != nil {
			fn(chunk.Content)
		}
		sb.WriteString(chunk.Content)
	}
	return sb.String(), nil
}

// Collect drains a fragment channel into the assembled text.
func Collect(ch <-chan StreamChunk) (string, error) {
	var sb strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			return sb.String(), chunk.Err
		}
		sb.WriteString(chunk.Content)
	}
	return sb.String(), nil
}
