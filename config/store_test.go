package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_ResolvesProviderSection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", `
providers:
  openai:
    api_key: sk-file
    model: gpt-4o
    timeout: 30s
`)

	store, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := store.Resolve("openai")
	if cfg.Dialect != "openai" {
		t.Errorf("dialect = %q, want section key", cfg.Dialect)
	}
	if cfg.APIKey != "sk-file" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", `
providers:
  openai:
    api_key: sk-file
`)
	t.Setenv("LLMKIT_OPENAI_API_KEY", "sk-env")

	store, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := store.Resolve("openai").APIKey; got != "sk-env" {
		t.Errorf("api key = %q, want env override", got)
	}
}

func TestResolve_EnvKeySanitizesProviderID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", "providers: {}\n")
	t.Setenv("LLMKIT_OPENAI_COMPAT_API_KEY", "sk-compat")

	store, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := store.Resolve("openai-compat").APIKey; got != "sk-compat" {
		t.Errorf("api key = %q, want LLMKIT_OPENAI_COMPAT_API_KEY value", got)
	}
}

func TestResolve_SharedProxyAppliesWhenProviderHasNone(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", `
proxy:
  enabled: true
  host: 127.0.0.1
  port: 7890
providers:
  openai:
    api_key: sk-x
  anthropic:
    api_key: sk-y
    proxy_url: http://other-proxy:3128
`)

	store, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := store.Resolve("openai").ProxyURL; got != "http://127.0.0.1:7890" {
		t.Errorf("openai proxy = %q, want shared proxy", got)
	}
	if got := store.Resolve("anthropic").ProxyURL; got != "http://other-proxy:3128" {
		t.Errorf("anthropic proxy = %q, want provider override", got)
	}
}

func TestResolve_DisabledProxyIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", `
proxy:
  enabled: false
  host: 127.0.0.1
  port: 7890
providers:
  openai:
    api_key: sk-x
`)

	store, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := store.Resolve("openai").ProxyURL; got != "" {
		t.Errorf("proxy = %q, want empty for disabled proxy", got)
	}
}

func TestLoad_DotEnvFeedsOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "llmkit.yaml", "providers: {}\n")
	envPath := writeFile(t, dir, ".env", "LLMKIT_MODELSCOPE_API_KEY=ms-dotenv\n")
	t.Setenv("LLMKIT_MODELSCOPE_API_KEY", "") // godotenv does not override set vars
	os.Unsetenv("LLMKIT_MODELSCOPE_API_KEY")

	store, err := Load(WithFile(cfgPath), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := store.Resolve("modelscope").APIKey; got != "ms-dotenv" {
		t.Errorf("api key = %q, want .env value", got)
	}
}

func TestLoad_InvalidBaseURLRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "llmkit.yaml", `
providers:
  openai:
    api_key: sk-x
    base_url: "not a url"
`)

	if _, err := Load(WithFile(path), WithEnvFile(filepath.Join(dir, "nonexistent.env"))); err == nil {
		t.Error("want validation error for malformed base_url")
	}
}

func TestLoad_MissingConfigFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	store, err := Load(WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(store.Providers()) != 0 {
		t.Errorf("providers = %v, want none", store.Providers())
	}
}

func TestProxyConfigURL(t *testing.T) {
	p := ProxyConfig{Enabled: true, Host: "proxy.local", Port: 8080}
	if got := p.URL(); got != "http://proxy.local:8080" {
		t.Errorf("URL = %q", got)
	}
}
