// Package config loads provider credentials and connection settings from a
// YAML file, an optional .env file, and LLMKIT_-prefixed environment
// variables, and resolves them into per-provider llm.Config values.
//
// File layout:
//
//	proxy:
//	  enabled: true
//	  host: 127.0.0.1
//	  port: 7890
//	providers:
//	  openai:
//	    api_key: sk-...
//	    model: gpt-4-turbo
//	  anthropic:
//	    api_key: sk-ant-...
//
// Environment variables override file values per provider:
// LLMKIT_OPENAI_API_KEY, LLMKIT_OPENAI_MODEL, LLMKIT_OPENAI_BASE_URL.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/penflow/llmkit/llm"
)

const envPrefix = "LLMKIT"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProxyConfig is the shared forward-proxy section. When enabled, every
// provider without its own proxy_url routes through it.
type ProxyConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Host    string `yaml:"host" mapstructure:"host" validate:"required_if=Enabled true"`
	Port    int    `yaml:"port" mapstructure:"port" validate:"required_if=Enabled true,omitempty,min=1,max=65535"`
}

// URL renders the proxy as a URL, or "" when disabled.
func (p ProxyConfig) URL() string {
	if !p.Enabled {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Host, p.Port)
}

// ProviderConfig is one provider section of the file.
type ProviderConfig struct {
	// Dialect defaults to the section key when empty.
	Dialect  string            `yaml:"dialect" mapstructure:"dialect"`
	APIKey   string            `yaml:"api_key" mapstructure:"api_key"`
	Model    string            `yaml:"model" mapstructure:"model"`
	BaseURL  string            `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`
	ProxyURL string            `yaml:"proxy_url" mapstructure:"proxy_url" validate:"omitempty,url"`
	Timeout  time.Duration     `yaml:"timeout" mapstructure:"timeout"`
	Headers  map[string]string `yaml:"headers" mapstructure:"headers"`
}

// File is the full configuration file.
type File struct {
	Proxy     ProxyConfig               `yaml:"proxy" mapstructure:"proxy" validate:"omitempty"`
	Providers map[string]ProviderConfig `yaml:"providers" mapstructure:"providers" validate:"dive"`
}

// Store holds a loaded configuration file and resolves provider configs
// against it.
type Store struct {
	file File
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
}

// WithFile sets an explicit config file path.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// Load reads the configuration file and .env file. A missing config file is
// not an error; env variables alone can configure a provider.
func Load(opts ...Option) (*Store, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	envFile := lo.envFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if lo.configFile != "" {
		v.SetConfigFile(lo.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", lo.configFile, err)
		}
	} else {
		v.SetConfigName("llmkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/llmkit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Store{file: file}, nil
}

// Providers returns the provider IDs present in the file.
func (s *Store) Providers() []string {
	names := make([]string, 0, len(s.file.Providers))
	for name := range s.file.Providers {
		names = append(names, name)
	}
	return names
}

// Proxy returns the shared proxy section.
func (s *Store) Proxy() ProxyConfig { return s.file.Proxy }

// Resolve builds the llm.Config for one provider ID, layering environment
// overrides on top of the file section and falling back to the shared proxy.
// An unknown provider ID is not an error when env variables supply the key;
// missing credentials surface as a config error at adapter construction.
func (s *Store) Resolve(providerID string) llm.Config {
	pc := s.file.Providers[providerID]

	dialect := pc.Dialect
	if dialect == "" {
		dialect = providerID
	}

	proxyURL := pc.ProxyURL
	if proxyURL == "" {
		proxyURL = s.file.Proxy.URL()
	}

	cfg := llm.Config{
		Name:     providerID,
		Dialect:  dialect,
		APIKey:   envOverride(providerID, "API_KEY", pc.APIKey),
		Model:    envOverride(providerID, "MODEL", pc.Model),
		BaseURL:  envOverride(providerID, "BASE_URL", pc.BaseURL),
		ProxyURL: envOverride(providerID, "PROXY_URL", proxyURL),
		Timeout:  pc.Timeout,
		Headers:  pc.Headers,
	}
	return cfg
}

// envOverride returns LLMKIT_<PROVIDER>_<FIELD> when set, else the fallback.
func envOverride(providerID, field, fallback string) string {
	key := envPrefix + "_" + sanitizeEnvKey(providerID) + "_" + field
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sanitizeEnvKey(s string) string {
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, s)
}
