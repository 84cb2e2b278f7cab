package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPrompt = "user> "

// Config holds the REPL and tooling settings read from a YAML file.
type Config struct {
	Prompt   string `yaml:"prompt"`
	Readably bool   `yaml:"readably"`
	Color    bool   `yaml:"color"`
	Dump     bool   `yaml:"dump"`
	Log      Log    `yaml:"log"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	msg := "config validation failed:"
	for _, issue := range e.Issues {
		msg += "\n  - " + issue
	}
	return msg
}

func Default() Config {
	return Config{
		Prompt:   DefaultPrompt,
		Readably: true,
		Color:    true,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var issues []string
	if c.Prompt == "" {
		issues = append(issues, "prompt must not be empty")
	}
	if c.Log.Verbosity < 0 {
		issues = append(issues, fmt.Sprintf("log.verbosity must be >= 0, got %d", c.Log.Verbosity))
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// LogFile returns the log path for commonlog.Configure, nil meaning stderr.
func (c Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
