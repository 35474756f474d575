// Package openai implements the OpenAI chat-completions dialect.
//
// Importing this package registers the "openai" dialect:
//
//	import _ "github.com/penflow/llmkit/llm/openai"
package openai

import (
	"encoding/json"
	"fmt"

	"github.com/penflow/llmkit/httpclient"
	"github.com/penflow/llmkit/llm"
)

// DialectName is the registry name for this dialect.
const DialectName = "openai"

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4-turbo"
	chatPath       = "/v1/chat/completions"
	doneSentinel   = "[DONE]"
)

func init() {
	llm.RegisterDialect(DialectName, Dialect{})
}

// Dialect speaks the OpenAI chat-completions wire format.
type Dialect struct{}

var _ llm.Dialect = Dialect{}

func (Dialect) Name() string           { return DialectName }
func (Dialect) DefaultBaseURL() string { return defaultBaseURL }
func (Dialect) DefaultModel() string   { return defaultModel }
func (Dialect) ChatPath() string       { return chatPath }
func (Dialect) HealthPath() string     { return "/v1/models" }

func (Dialect) Auth(apiKey string) *httpclient.AuthConfig {
	return httpclient.BearerAuth(apiKey)
}

func (Dialect) ExtraHeaders() map[string]string { return nil }

// BuildRequest maps the universal request onto the OpenAI JSON envelope.
// A system prompt becomes the leading message with role "system".
func (Dialect) BuildRequest(req llm.CompletionRequest) (any, error) {
	messages := make([]llm.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, llm.Message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, req.Messages...)

	body := map[string]any{
		"model":    req.Model,
		"messages": messages,
	}
	if req.Stream {
		body["stream"] = true
	}
	for k, v := range req.Extra {
		body[k] = v
	}
	return body, nil
}

type responseEnvelope struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type chunkEnvelope struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// ParseResponse extracts choices[0].message.content from a buffered response.
func (Dialect) ParseResponse(body []byte) (*llm.CompletionResponse, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(env.Choices) == 0 {
		return nil, fmt.Errorf("response has no choices")
	}
	return &llm.CompletionResponse{
		Content: env.Choices[0].Message.Content,
		Model:   env.Model,
		Usage: llm.Usage{
			PromptTokens:     env.Usage.PromptTokens,
			CompletionTokens: env.Usage.CompletionTokens,
			TotalTokens:      env.Usage.TotalTokens,
		},
	}, nil
}

// ParseStreamChunk extracts choices[0].delta.content from one stream payload.
// The "[DONE]" sentinel ends the stream; payloads that fail to parse are
// skipped.
func (Dialect) ParseStreamChunk(data []byte) (string, bool, error) {
	if string(data) == doneSentinel {
		return "", true, nil
	}
	var env chunkEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", false, llm.ErrSkipChunk
	}
	if len(env.Choices) == 0 {
		return "", false, nil
	}
	return env.Choices[0].Delta.Content, false, nil
}
