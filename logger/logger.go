// Package logger wraps zerolog with a small, service-oriented API used by
// the CLI and the provider middleware. Library code (the adapters) never
// logs; logging always happens at the edges.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls logger output.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format" mapstructure:"format"`
	// Output is "stdout" or "stderr".
	Output string `yaml:"output" mapstructure:"output"`
	// NoColor disables console colorization.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Logger wraps zerolog.Logger with a service name.
type Logger struct {
	zl      zerolog.Logger
	service string
}

// New creates a logger from config.
func New(cfg Config, service string) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := outputWriter(cfg.Output)
	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor})
	} else {
		zl = zerolog.New(out)
	}
	zl = zl.Level(level).With().Timestamp().Str("service", service).Logger()

	return &Logger{zl: zl, service: service}
}

// NewDefault creates a console logger at info level.
func NewDefault(service string) *Logger {
	return New(Config{}, service)
}

// Debug logs at debug level with optional structured fields.
func (l *Logger) Debug(msg string, fields map[string]any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

// Info logs at info level with optional structured fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level with optional structured fields.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level with optional structured fields.
func (l *Logger) Error(msg string, fields map[string]any) {
	l.zl.Error().Fields(fields).Msg(msg)
}

// Zerolog exposes the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

func outputWriter(name string) io.Writer {
	if strings.ToLower(name) == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}
