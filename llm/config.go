package llm

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/penflow/llmkit/resilience"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the fully-resolved configuration one adapter is bound to.
// It is treated as read-only after construction.
type Config struct {
	// Name identifies this adapter instance. Defaults to "<dialect>-llm".
	Name string `yaml:"name" mapstructure:"name"`

	// Dialect selects the provider mapping (e.g., "openai", "anthropic").
	// Must match a dialect registered via RegisterDialect.
	Dialect string `yaml:"dialect" mapstructure:"dialect"`

	// APIKey authenticates against the provider. Required; a missing key
	// fails adapter construction, never a later call.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`

	// Model is the model name. Falls back to the dialect's default.
	Model string `yaml:"model" mapstructure:"model"`

	// BaseURL overrides the dialect's endpoint base URL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// ProxyURL routes HTTPS requests through a forward proxy when set.
	ProxyURL string `yaml:"proxy_url" mapstructure:"proxy_url" validate:"omitempty,url"`

	// Timeout bounds buffered requests. Defaults to 120s. Streaming
	// requests are bounded by context cancellation instead.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are additional HTTP headers sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry is an optional caller-supplied retry policy applied to
	// buffered requests. Nil means no retry; the adapter never decides to
	// retry on its own.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`
}

// applyDefaults resolves unset fields against the dialect's constants.
func (c *Config) applyDefaults(d Dialect) {
	if c.Name == "" {
		c.Name = d.Name() + "-llm"
	}
	if c.Model == "" {
		c.Model = d.DefaultModel()
	}
	if c.BaseURL == "" {
		c.BaseURL = d.DefaultBaseURL()
	}
	if c.Timeout == 0 {
		c.Timeout = 120 * time.Second
	}
}

// validateFor checks the resolved configuration for the given dialect.
func (c *Config) validateFor(d Dialect) error {
	if c.APIKey == "" {
		return newConfigError(d.Name(), "api key is required")
	}
	if c.BaseURL == "" {
		return newConfigError(d.Name(), "base url is required for this provider")
	}
	if c.Model == "" {
		return newConfigError(d.Name(), "model name is required for this provider")
	}
	if err := validate.Struct(c); err != nil {
		return &Error{Provider: d.Name(), Code: ErrCodeConfig, Message: err.Error(), Err: err}
	}
	return nil
}
