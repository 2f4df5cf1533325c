// Package config holds the settings of an anagramfinder run: capacity
// limits, input kind, report format and logging.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/anagramfinder/pkg/anagram"
	"github.com/japaniel/anagramfinder/pkg/source"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the full run configuration. Field names double as YAML keys.
type Config struct {
	MaxWords   int    `yaml:"max_words"`
	MaxWordLen int    `yaml:"max_word_len"`
	Input      string `yaml:"input"`
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		MaxWords:   anagram.DefaultMaxWords,
		MaxWordLen: anagram.DefaultMaxWordLen,
		Input:      string(source.Lines),
		Format:     FormatText,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are an error. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if c.MaxWords < 1 {
		return fmt.Errorf("%w: max_words must be at least 1, got %d", ErrInvalid, c.MaxWords)
	}
	if c.MaxWordLen < 2 {
		return fmt.Errorf("%w: max_word_len must be at least 2, got %d", ErrInvalid, c.MaxWordLen)
	}
	if _, err := source.ParseKind(c.Input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Limits returns the capacity limits for the anagram engine.
func (c Config) Limits() anagram.Limits {
	return anagram.Limits{MaxWords: c.MaxWords, MaxWordLen: c.MaxWordLen}
}
