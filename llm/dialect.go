package llm

import (
	"fmt"
	"sync"

	"github.com/penflow/llmkit/httpclient"
)

// Dialect maps universal completion types to/from one provider's HTTP wire
// format. Each provider's quirks — endpoint, auth header, request envelope,
// response envelope, stream chunk shape — stay isolated in its dialect.
//
// Dialect implementations live in driver packages (llm/openai,
// llm/anthropic, ...) and register themselves at import time via
// [RegisterDialect], or are passed directly to [NewWithDialect].
type Dialect interface {
	// Name returns the dialect identifier (e.g., "openai").
	Name() string

	// DefaultBaseURL returns the provider's endpoint base URL. Empty means
	// the caller must supply one in Config.BaseURL.
	DefaultBaseURL() string

	// DefaultModel returns the model used when Config.Model is unset.
	// Empty means the caller must supply one.
	DefaultModel() string

	// ChatPath returns the chat-completion endpoint path.
	ChatPath() string

	// HealthPath returns a cheap availability-check path. Empty means the
	// provider has no such endpoint.
	HealthPath() string

	// Auth maps the API key onto the provider's authentication scheme.
	Auth(apiKey string) *httpclient.AuthConfig

	// ExtraHeaders returns provider-mandated headers sent with every
	// request (e.g. an API version header).
	ExtraHeaders() map[string]string

	// BuildRequest maps a universal request to the provider's JSON body.
	BuildRequest(req CompletionRequest) (any, error)

	// ParseResponse maps the provider's buffered JSON envelope to a
	// universal response. A missing content field is an error, not a panic.
	ParseResponse(body []byte) (*CompletionResponse, error)

	// ParseStreamChunk extracts content from one stream data payload.
	// It returns [ErrSkipChunk] for payloads that should be silently
	// skipped, and done=true when the payload is the end-of-stream
	// sentinel.
	ParseStreamChunk(data []byte) (content string, done bool, err error)
}

// --- Dialect registry ---

var (
	dialectsMu sync.RWMutex
	dialects   = map[string]Dialect{}
)

// RegisterDialect adds a dialect to the global registry. Typically called
// from init() in driver packages so that importing the driver registers the
// dialect as a side effect.
func RegisterDialect(name string, d Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[name] = d
}

// GetDialect retrieves a dialect by name from the global registry.
func GetDialect(name string) (Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("llm: unknown dialect %q (forgot to import driver?)", name)
	}
	return d, nil
}

// Dialects returns the names of all registered dialects.
func Dialects() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	return names
}
