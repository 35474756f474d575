package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/penflow/llmkit/httpclient"
	"github.com/penflow/llmkit/provider"
)

// Client is the capability contract every provider-bound adapter satisfies:
// buffered generation via Execute and incremental generation via Stream.
type Client interface {
	provider.Provider

	// Execute sends a completion request and returns the full response.
	Execute(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// Stream sends a completion request and returns a channel of text
	// fragments. The channel closes when the stream ends; a terminal
	// error, if any, is delivered as the final chunk's Err.
	Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}

// Adapter is a chat-completion client bound to exactly one fully-resolved
// configuration and one dialect. It classifies failures but never retries
// and never logs; both are the caller's job.
//
// Adapter implements [Client] and
// provider.Streamable[CompletionRequest, CompletionResponse, StreamChunk].
type Adapter struct {
	http    *httpclient.Client
	dialect Dialect
	name    string
	model   string
}

var _ Client = (*Adapter)(nil)
var _ provider.Streamable[CompletionRequest, CompletionResponse, StreamChunk] = (*Adapter)(nil)

// New creates an adapter from config using the global dialect registry.
func New(cfg Config) (*Adapter, error) {
	dialect, err := GetDialect(cfg.Dialect)
	if err != nil {
		return nil, newConfigError(cfg.Dialect, err.Error())
	}
	return NewWithDialect(dialect, cfg)
}

// NewWithDialect creates an adapter with an explicit dialect instance.
// Construction fails with a configuration error — before any network call —
// when the API key is empty or the endpoint cannot be resolved.
func NewWithDialect(dialect Dialect, cfg Config) (*Adapter, error) {
	if dialect == nil {
		return nil, newConfigError("", "dialect is required")
	}
	cfg.applyDefaults(dialect)
	if err := cfg.validateFor(dialect); err != nil {
		return nil, err
	}

	headers := map[string]string{}
	for k, v := range dialect.ExtraHeaders() {
		headers[k] = v
	}
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		ProxyURL: cfg.ProxyURL,
		Auth:     dialect.Auth(cfg.APIKey),
		Headers:  headers,
		Retry:    cfg.Retry,
	})
	if err != nil {
		return nil, &Error{
			Provider: dialect.Name(),
			Code:     ErrCodeConfig,
			Message:  fmt.Sprintf("create http client: %v", err),
			Err:      err,
		}
	}

	return &Adapter{
		http:    client,
		dialect: dialect,
		name:    cfg.Name,
		model:   cfg.Model,
	}, nil
}

// Name returns the adapter name.
func (a *Adapter) Name() string { return a.name }

// Dialect returns the dialect this adapter is bound to.
func (a *Adapter) Dialect() Dialect { return a.dialect }

// IsAvailable checks whether the provider endpoint is reachable, using the
// dialect's health path when it has one.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	hp := a.dialect.HealthPath()
	if hp == "" {
		return true
	}
	_, err := a.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: hp})
	return err == nil
}

// Execute sends a completion request and returns the full assembled response.
func (a *Adapter) Execute(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	a.applyRequestDefaults(&req)
	req.Stream = false

	body, err := a.dialect.BuildRequest(req)
	if err != nil {
		return CompletionResponse{}, newConfigError(a.dialect.Name(), fmt.Sprintf("build request: %v", err))
	}

	resp, err := a.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   a.dialect.ChatPath(),
		Body:   body,
	})
	if err != nil {
		return CompletionResponse{}, fromHTTPError(a.dialect.Name(), err)
	}

	result, err := a.dialect.ParseResponse(resp.Body)
	if err != nil {
		return CompletionResponse{}, newDecodeError(a.dialect.Name(), fmt.Sprintf("parse response: %v", err), err)
	}
	return *result, nil
}

// Stream sends a completion request and returns a channel of streamed
// fragments. Failures before the first byte (configuration, transport,
// status) are returned synchronously; the channel is only created once the
// endpoint has accepted the request.
//
// Cancelling ctx abandons the stream and releases the connection; fragments
// already delivered remain valid.
func (a *Adapter) Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	a.applyRequestDefaults(&req)
	req.Stream = true

	body, err := a.dialect.BuildRequest(req)
	if err != nil {
		return nil, newConfigError(a.dialect.Name(), fmt.Sprintf("build request: %v", err))
	}

	streamResp, err := a.http.DoStream(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   a.dialect.ChatPath(),
		Body:   body,
	})
	if err != nil {
		return nil, fromHTTPError(a.dialect.Name(), err)
	}

	ch := make(chan StreamChunk)
	go a.readStream(ctx, streamResp, ch)
	return ch, nil
}

func (a *Adapter) applyRequestDefaults(req *CompletionRequest) {
	if req.Model == "" {
		req.Model = a.model
	}
}
