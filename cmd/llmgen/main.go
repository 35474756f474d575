// llmgen sends a prompt to a configured LLM provider and prints the
// completion, either buffered or streamed token-by-token.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/penflow/llmkit/logger"
	"github.com/penflow/llmkit/version"
)

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("llmgen"),
		kong.Description("Generate text with a configured LLM provider"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Short()},
	)

	log := logger.New(logger.Config{Level: cli.LogLevel, Format: cli.LogFormat}, "llmgen")

	if err := ctx.Run(&cli, log); err != nil {
		log.Error("command failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
