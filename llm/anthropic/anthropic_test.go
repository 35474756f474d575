package anthropic

import (
	"errors"
	"testing"

	"github.com/penflow/llmkit/llm"
)

func TestBuildRequest_SystemPromptIsTopLevel(t *testing.T) {
	d := Dialect{}
	body, err := d.BuildRequest(llm.CompletionRequest{
		Model:        "claude-3-opus-20240229",
		SystemPrompt: "be terse",
		Messages:     llm.UserMessage("hello"),
	})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	m := body.(map[string]any)
	if m["system"] != "be terse" {
		t.Errorf("system = %v", m["system"])
	}
	messages := m["messages"].([]llm.Message)
	if len(messages) != 1 || messages[0].Role != "user" {
		t.Errorf("messages = %+v, want single user message", messages)
	}
	if m["max_tokens"] != defaultMaxTokens {
		t.Errorf("max_tokens = %v", m["max_tokens"])
	}
}

func TestBuildRequest_ExtraOverridesMaxTokens(t *testing.T) {
	d := Dialect{}
	body, _ := d.BuildRequest(llm.CompletionRequest{
		Messages: llm.UserMessage("hi"),
		Extra:    map[string]any{"max_tokens": 100},
	})
	if got := body.(map[string]any)["max_tokens"]; got != 100 {
		t.Errorf("max_tokens = %v, want 100", got)
	}
}

func TestExtraHeaders_CarriesAPIVersion(t *testing.T) {
	headers := Dialect{}.ExtraHeaders()
	if headers["anthropic-version"] != apiVersion {
		t.Errorf("anthropic-version = %q", headers["anthropic-version"])
	}
}

func TestAuth_UsesAPIKeyHeader(t *testing.T) {
	auth := Dialect{}.Auth("sk-test")
	if auth.Header != "x-api-key" || auth.Token != "sk-test" {
		t.Errorf("auth = %+v", auth)
	}
}

func TestParseResponse(t *testing.T) {
	d := Dialect{}
	resp, err := d.ParseResponse([]byte(`{
		"model": "claude-3-opus-20240229",
		"content": [{"type": "text", "text": "hi there"}],
		"usage": {"input_tokens": 5, "output_tokens": 2}
	}`))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if resp.Content != "hi there" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestParseResponse_NoContentBlocks(t *testing.T) {
	d := Dialect{}
	if _, err := d.ParseResponse([]byte(`{"content": []}`)); err == nil {
		t.Error("want error for empty content")
	}
}

func TestParseStreamChunk_TextDelta(t *testing.T) {
	d := Dialect{}
	content, done, err := d.ParseStreamChunk([]byte(
		`{"type":"content_block_delta","delta":{"type":"text_delta","text":"Hel"}}`))
	if err != nil || done {
		t.Fatalf("err=%v done=%v", err, done)
	}
	if content != "Hel" {
		t.Errorf("content = %q", content)
	}
}

func TestParseStreamChunk_MessageStop(t *testing.T) {
	d := Dialect{}
	_, done, err := d.ParseStreamChunk([]byte(`{"type":"message_stop"}`))
	if err != nil {
		t.Fatalf("ParseStreamChunk: %v", err)
	}
	if !done {
		t.Error("want done=true for message_stop")
	}
}

func TestParseStreamChunk_OtherEventsYieldNothing(t *testing.T) {
	d := Dialect{}
	for _, payload := range []string{
		`{"type":"message_start","message":{}}`,
		`{"type":"content_block_start","content_block":{}}`,
		`{"type":"ping"}`,
		`{"type":"content_block_delta","delta":{"type":"input_json_delta","partial_json":"{}"}}`,
	} {
		content, done, err := d.ParseStreamChunk([]byte(payload))
		if err != nil || done || content != "" {
			t.Errorf("%s: content=%q done=%v err=%v", payload, content, done, err)
		}
	}
}

func TestParseStreamChunk_InvalidJSONSkipped(t *testing.T) {
	d := Dialect{}
	_, _, err := d.ParseStreamChunk([]byte(`{"type":`))
	if !errors.Is(err, llm.ErrSkipChunk) {
		t.Errorf("err = %v, want ErrSkipChunk", err)
	}
}
