package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/runelookup/pkg/logger"
)

// Output formats.
const (
	formatAuto = "auto"
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// pipeName is the input name that selects stdin.
const pipeName = "-"

var errUsage = errors.New("runelookup: nothing to look up")

// Config is read from RUNELOOKUP_* environment variables and then
// overridden by command-line flags.
type Config struct {
	Replacement    string `env:"RUNELOOKUP_REPLACEMENT"`
	ExtraPrintable string `env:"RUNELOOKUP_EXTRA_PRINTABLE"`
	Format         string `env:"RUNELOOKUP_FORMAT" envDefault:"auto"`
	Input          string `env:"RUNELOOKUP_INPUT"`

	// Optional shared memo table. Empty keeps lookups in process memory.
	RedisURL    string `env:"RUNELOOKUP_REDIS_URL"`
	RedisPrefix string `env:"RUNELOOKUP_REDIS_PREFIX" envDefault:"runelookup"`

	Log logger.Config `envPrefix:"RUNELOOKUP_"`

	CaseSensitive bool `env:"RUNELOOKUP_CASE_SENSITIVE" envDefault:"true"`
}

// loadConfig parses environ, then args. It returns the remaining
// positional arguments.
func loadConfig(args []string, environ map[string]string, stderr io.Writer) (Config, []string, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, nil, fmt.Errorf("runelookup: parse environment: %w", err)
	}

	fs := flag.NewFlagSet("runelookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: runelookup [flags] [text ...]\n\n")
		fmt.Fprintf(fs.Output(), "Suggests an ASCII-safe replacement for every character of the input.\n\n")
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.CaseSensitive, "case", cfg.CaseSensitive, "Lowercase base letters of non-capital characters")
	fs.StringVar(&cfg.Replacement, "replace", cfg.Replacement, "Replacement for characters without a printable suggestion")
	fs.StringVar(&cfg.ExtraPrintable, "extra", cfg.ExtraPrintable, "Additional characters to treat as printable")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: auto, text, json or yaml")
	fs.StringVar(&cfg.Input, "in", cfg.Input, "Read lines from this file, or - for stdin")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for a shared lookup cache")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	switch cfg.Format {
	case formatAuto, formatText, formatJSON, formatYAML:
	default:
		return Config{}, nil, fmt.Errorf("runelookup: unknown format %q", cfg.Format)
	}

	return cfg, fs.Args(), nil
}
