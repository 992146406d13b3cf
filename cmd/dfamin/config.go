package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	dfa "github.com/NimalKG/dfa-minimization-tool"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is the content of a -config file: the DFA table plus output and logging settings.
type Config struct {
	dfa.Table `yaml:",inline"`

	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
	Output    string `yaml:"output" validate:"oneof=text json"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
}

func defaultConfig() *Config {
	return &Config{
		Table:     *dfa.ExampleTable(),
		Output:    "text",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// loadConfig reads path over the defaults. An empty path keeps the example table.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	// A file replaces the example table entirely.
	cfg.Table = dfa.Table{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings; the table itself is never rejected.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not one of [%s]", e.Field(), e.Value(), e.Param()))
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s: must be exactly %s character", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", e.Field(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func (c *Config) parseOptions() []dfa.ParseOption {
	if c.Delimiter == "" {
		return nil
	}
	return []dfa.ParseOption{dfa.WithDelimiter(c.Delimiter)}
}

func newLogger(w io.Writer, c *Config) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
