package llm

import (
	"time"

	"github.com/penflow/llmkit/provider"
)

// NewRegistry creates a provider registry for completion clients.
func NewRegistry() *provider.Registry[Client] {
	return provider.NewRegistry[Client]()
}

// NewFactory returns a provider.Factory that builds an adapter for the named
// dialect from a generic config map. Recognized keys: name, api_key, model,
// base_url, proxy_url, timeout.
func NewFactory(dialect string) provider.Factory[Client] {
	return func(cfg map[string]any) (Client, error) {
		c := Config{Dialect: dialect}
		if v, ok := cfg["name"].(string); ok {
			c.Name = v
		}
		if v, ok := cfg["api_key"].(string); ok {
			c.APIKey = v
		}
		if v, ok := cfg["model"].(string); ok {
			c.Model = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			c.BaseURL = v
		}
		if v, ok := cfg["proxy_url"].(string); ok {
			c.ProxyURL = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			c.Timeout = v
		}
		return New(c)
	}
}
