// Package openaicompat implements a dialect for self-hosted or third-party
// endpoints that speak the OpenAI chat-completions wire format (vLLM,
// LM Studio, llama.cpp server, gateway proxies). The endpoint base URL is
// mandatory and there is no default model.
//
// Importing this package registers the "openai-compat" dialect:
//
//	import _ "github.com/penflow/llmkit/llm/openaicompat"
//
// Other OpenAI-compatible providers can build named variants with [New].
package openaicompat

import (
	"encoding/json"
	"fmt"

	"github.com/penflow/llmkit/httpclient"
	"github.com/penflow/llmkit/llm"
)

// DialectName is the registry name for the generic compat dialect.
const DialectName = "openai-compat"

const doneSentinel = "[DONE]"

func init() {
	llm.RegisterDialect(DialectName, Dialect{name: DialectName})
}

// Dialect speaks the OpenAI-compatible wire format against a configurable
// endpoint. The zero value is not usable; use the registered instance or [New].
type Dialect struct {
	name    string
	baseURL string
	model   string
}

var _ llm.Dialect = Dialect{}

// New creates a named dialect variant with its own endpoint and model
// defaults. Providers that are OpenAI-compatible on the wire (ModelScope,
// local inference servers) build on this.
func New(name, baseURL, model string) Dialect {
	return Dialect{name: name, baseURL: baseURL, model: model}
}

func (d Dialect) Name() string           { return d.name }
func (d Dialect) DefaultBaseURL() string { return d.baseURL }
func (d Dialect) DefaultModel() string   { return d.model }
func (Dialect) ChatPath() string         { return "/chat/completions" }
func (Dialect) HealthPath() string       { return "/models" }

func (Dialect) Auth(apiKey string) *httpclient.AuthConfig {
	return httpclient.BearerAuth(apiKey)
}

func (Dialect) ExtraHeaders() map[string]string { return nil }

// BuildRequest maps the universal request onto the OpenAI-style envelope.
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
		// Some compat servers put completion text here instead.
		Text string `json:"text"`
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
		Text string `json:"text"`
	} `json:"choices"`
}

// ParseResponse extracts choices[0].message.content, falling back to the
// legacy choices[0].text field some compat servers emit.
func (Dialect) ParseResponse(body []byte) (*llm.CompletionResponse, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(env.Choices) == 0 {
		return nil, fmt.Errorf("response has no choices")
	}
	content := env.Choices[0].Message.Content
	if content == "" {
		content = env.Choices[0].Text
	}
	return &llm.CompletionResponse{
		Content: content,
		Model:   env.Model,
		Usage: llm.Usage{
			PromptTokens:     env.Usage.PromptTokens,
			CompletionTokens: env.Usage.CompletionTokens,
			TotalTokens:      env.Usage.TotalTokens,
		},
	}, nil
}

// ParseStreamChunk extracts choices[0].delta.content (falling back to text)
// from one stream payload. "[DONE]" ends the stream; unparseable payloads
// are skipped.
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
	content := env.Choices[0].Delta.Content
	if content == "" {
		content = env.Choices[0].Text
	}
	return content, false, nil
}
