package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/penflow/llmkit/config"
	"github.com/penflow/llmkit/llm"
	"github.com/penflow/llmkit/logger"

	// Register dialect drivers.
	_ "github.com/penflow/llmkit/llm/anthropic"
	_ "github.com/penflow/llmkit/llm/modelscope"
	_ "github.com/penflow/llmkit/llm/openai"
	_ "github.com/penflow/llmkit/llm/openaicompat"
)

// CLI is the root command structure for llmgen.
type CLI struct {
	Config    string `short:"c" help:"Path to config file" type:"path" env:"LLMKIT_CONFIG"`
	EnvFile   string `help:"Path to .env file" type:"path" env:"LLMKIT_ENV_FILE"`
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"warn" env:"LLMKIT_LOG_LEVEL"`
	LogFormat string `help:"Log format (console, json)" default:"console" env:"LLMKIT_LOG_FORMAT"`

	Version kong.VersionFlag `short:"V" help:"Print version and exit"`

	Generate  GenerateCmd  `cmd:"" default:"withargs" help:"Generate a completion for a prompt"`
	Providers ProvidersCmd `cmd:"" help:"List configured providers and registered dialects"`
}

func (c *CLI) loadStore() (*config.Store, error) {
	var opts []config.Option
	if c.Config != "" {
		opts = append(opts, config.WithFile(c.Config))
	}
	if c.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(c.EnvFile))
	}
	return config.Load(opts...)
}

// GenerateCmd runs one prompt against one provider.
type GenerateCmd struct {
	Provider string   `short:"p" help:"Provider ID from the config file" default:"openai" env:"LLMKIT_PROVIDER"`
	Model    string   `short:"m" help:"Override the configured model"`
	System   string   `short:"s" help:"System prompt"`
	Stream   bool     `help:"Stream the completion to stdout as it arrives" default:"true" negatable:""`
	Prompt   []string `arg:"" help:"Prompt text"`
}

// Run executes the generate command.
func (g *GenerateCmd) Run(cli *CLI, log *logger.Logger) error {
	store, err := cli.loadStore()
	if err != nil {
		return err
	}

	cfg := store.Resolve(g.Provider)
	client, err := llm.New(cfg)
	if err != nil {
		return err
	}

	log.Debug("adapter ready", map[string]any{
		"provider": client.Name(),
		"model":    cfg.Model,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := llm.CompletionRequest{
		Model:        g.Model,
		SystemPrompt: g.System,
		Messages:     llm.UserMessage(strings.Join(g.Prompt, " ")),
	}

	if !g.Stream {
		resp, err := client.Execute(ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(resp.Content)
		return nil
	}

	ch, err := client.Stream(ctx, req)
	if err != nil {
		return err
	}
	for chunk := range ch {
		if chunk.Err != nil {
			fmt.Println()
			return chunk.Err
		}
		fmt.Print(chunk.Content)
	}
	fmt.Println()
	return nil
}

// ProvidersCmd lists configured providers and registered dialects.
type ProvidersCmd struct{}

// Run executes the providers command.
func (p *ProvidersCmd) Run(cli *CLI, log *logger.Logger) error {
	store, err := cli.loadStore()
	if err != nil {
		return err
	}

	configured := store.Providers()
	sort.Strings(configured)
	dialects := llm.Dialects()
	sort.Strings(dialects)

	fmt.Println("configured providers:")
	for _, name := range configured {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("registered dialects:")
	for _, name := range dialects {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
