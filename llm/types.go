package llm

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role" yaml:"role"` // "system", "user", "assistant"
	Content string `json:"content" yaml:"content"`
}

// CompletionRequest is the universal input for all providers.
type CompletionRequest struct {
	// Model overrides the adapter's default model.
	Model string `json:"model,omitempty" yaml:"model"`
	// Messages is the conversation to complete.
	Messages []Message `json:"messages" yaml:"messages"`
	// SystemPrompt is prepended as a system message when set.
	SystemPrompt string `json:"system_prompt,omitempty" yaml:"system_prompt"`
	// Stream requests streaming mode. Set automatically by Adapter.Stream.
	Stream bool `json:"stream,omitempty" yaml:"stream"`
	// Extra holds provider-specific fields that don't fit the universal
	// schema. Dialects may fold these into the wire request.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra"`
}

// CompletionResponse is the universal output of the buffered path.
type CompletionResponse struct {
	// Content is the generated text.
	Content string `json:"content"`
	// Model is the model that produced the response, when reported.
	Model string `json:"model"`
	// Usage reports token consumption, when the provider includes it.
	Usage Usage `json:"usage"`
}

// StreamChunk is one incremental fragment of a streamed response.
// Chunks with empty content are never delivered; the channel closing marks
// the end of the sequence.
type StreamChunk struct {
	// Content is the text fragment.
	Content string `json:"content"`
	// Err is set when the stream terminates abnormally. Fragments delivered
	// before the error remain valid.
	Err error `json:"-"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// UserMessage wraps a prompt as a single-message conversation.
func UserMessage(prompt string) []Message {
	return []Message{{Role: "user", Content: prompt}}
}
