// Package anthropic implements the Anthropic Messages API dialect.
//
// Importing this package registers the "anthropic" dialect:
//
//	import _ "github.com/penflow/llmkit/llm/anthropic"
package anthropic

import (
	"encoding/json"
	"fmt"

	"github.com/penflow/llmkit/httpclient"
	"github.com/penflow/llmkit/llm"
)

// DialectName is the registry name for this dialect.
const DialectName = "anthropic"

const (
	defaultBaseURL = "https://api.anthropic.com"
	defaultModel   = "claude-3-opus-20240229"
	chatPath       = "/v1/messages"
	apiVersion     = "2023-06-01"

	// The Messages API requires max_tokens; overridable via Extra.
	defaultMaxTokens = 4096
)

func init() {
	llm.RegisterDialect(DialectName, Dialect{})
}

// Dialect speaks the Anthropic Messages wire format.
type Dialect struct{}

var _ llm.Dialect = Dialect{}

func (Dialect) Name() string           { return DialectName }
func (Dialect) DefaultBaseURL() string { return defaultBaseURL }
func (Dialect) DefaultModel() string   { return defaultModel }
func (Dialect) ChatPath() string       { return chatPath }
func (Dialect) HealthPath() string     { return "" }

func (Dialect) Auth(apiKey string) *httpclient.AuthConfig {
	return httpclient.APIKeyAuth(apiKey, "x-api-key")
}

func (Dialect) ExtraHeaders() map[string]string {
	return map[string]string{"anthropic-version": apiVersion}
}

// BuildRequest maps the universal request onto the Messages envelope. The
// system prompt rides in the top-level "system" field, not the messages list.
func (Dialect) BuildRequest(req llm.CompletionRequest) (any, error) {
	body := map[string]any{
		"model":      req.Model,
		"messages":   req.Messages,
		"max_tokens": defaultMaxTokens,
	}
	if req.SystemPrompt != "" {
		body["system"] = req.SystemPrompt
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
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type streamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

// ParseResponse extracts content[0].text from a buffered response.
func (Dialect) ParseResponse(body []byte) (*llm.CompletionResponse, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(env.Content) == 0 {
		return nil, fmt.Errorf("response has no content blocks")
	}
	return &llm.CompletionResponse{
		Content: env.Content[0].Text,
		Model:   env.Model,
		Usage: llm.Usage{
			PromptTokens:     env.Usage.InputTokens,
			CompletionTokens: env.Usage.OutputTokens,
			TotalTokens:      env.Usage.InputTokens + env.Usage.OutputTokens,
		},
	}, nil
}

// ParseStreamChunk extracts text from content_block_delta events. The stream
// ends on a message_stop event; events that fail to parse are skipped.
func (Dialect) ParseStreamChunk(data []byte) (string, bool, error) {
	var ev streamEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return "", false, llm.ErrSkipChunk
	}
	switch ev.Type {
	case "message_stop":
		return "", true, nil
	case "content_block_delta":
		if ev.Delta.Type == "text_delta" {
			return ev.Delta.Text, false, nil
		}
	}
	return "", false, nil
}
