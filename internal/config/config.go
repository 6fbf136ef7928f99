package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/dropdown-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth       = "DROPDOWN_CONTROL_WIDTH"
	envHeight      = "DROPDOWN_CONTROL_HEIGHT"
	envMaxVisible  = "DROPDOWN_CONTROL_MAX_VISIBLE"
	envPlaceholder = "DROPDOWN_CONTROL_PLACEHOLDER"
	envOptions     = "DROPDOWN_CONTROL_OPTIONS"
	envOptionsFile = "DROPDOWN_CONTROL_OPTIONS_FILE"
	envTrace       = "DROPDOWN_CONTROL_TRACE"
	envLogFile     = "DROPDOWN_CONTROL_LOG_FILE"
)

// fileConfig is the TOML options-file schema.
type fileConfig struct {
	Placeholder string       `toml:"placeholder"`
	MaxVisible  int          `toml:"max-visible"`
	Options     []fileOption `toml:"option"`
}

type fileOption struct {
	Label  string `toml:"label"`
	Value  string `toml:"value"`
	Hidden bool   `toml:"hidden"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dropdown-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	maxVisible := fs.Int("max-visible", envOrInt(env, envMaxVisible, 8), "maximum menu rows shown at once (0 shows everything)")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, "Select…"), "header text shown while nothing is selected")
	options := fs.String("options", envOrDefault(env, envOptions, ""), "comma-separated options, each label=value or a bare value")
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, ""), "path to a TOML file describing the options")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *maxVisible < 0 {
		return Config{}, fmt.Errorf("max-visible must be >= 0 (got %d)", *maxVisible)
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			MaxVisible:  *maxVisible,
			Placeholder: *placeholder,
			Options:     parseOptionList(*options),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"maxVisible":  strconv.Itoa(*maxVisible),
			"placeholder": *placeholder,
			"options":     *options,
			"optionsFile": *optionsFile,
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if *optionsFile != "" {
		if err := applyOptionsFile(&cfg, *optionsFile); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// applyOptionsFile merges a TOML options file into the configuration. File
// options replace any flag-supplied list.
func applyOptionsFile(cfg *Config, path string) error {
	var file fileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("options file %s: %w", path, err)
	}
	if file.Placeholder != "" {
		cfg.App.Placeholder = file.Placeholder
	}
	if file.MaxVisible > 0 {
		cfg.App.MaxVisible = file.MaxVisible
	}
	if len(file.Options) > 0 {
		opts := make([]app.Option, 0, len(file.Options))
		for _, o := range file.Options {
			opts = append(opts, app.Option{Label: o.Label, Value: o.Value, Hidden: o.Hidden})
		}
		cfg.App.Options = opts
	}
	return nil
}

// parseOptionList splits a comma-separated option list. Each entry is
// label=value, or a bare value reused as its own label.
func parseOptionList(raw string) []app.Option {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	opts := make([]app.Option, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		if label, value, ok := strings.Cut(entry, "="); ok {
			opts = append(opts, app.Option{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
			continue
		}
		opts = append(opts, app.Option{Label: entry, Value: entry})
	}
	return opts
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	seen := make(map[string]struct{}, len(cfg.App.Options))
	for _, opt := range cfg.App.Options {
		if opt.Value == "" {
			return fmt.Errorf("option %q has an empty value", opt.Label)
		}
		if _, ok := seen[opt.Value]; ok {
			return fmt.Errorf("duplicate option value %q", opt.Value)
		}
		seen[opt.Value] = struct{}{}
	}
	return nil
}
