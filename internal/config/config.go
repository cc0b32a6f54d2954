// Package config loads the optional YAML configuration file for the
// preprocessor. All fields have working defaults; an absent file is not an
// error for callers that use LoadOrDefault.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/mdbook-aipr/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength        = 2048 // Browser limit
	MaxAuthorNameLength = 100
)

// DefaultFileName is the config file looked up next to the book root when
// no explicit path is given.
const DefaultFileName = "aipr.yaml"

// Config holds the preprocessor configuration.
type Config struct {
	// WordsPerMinute overrides the reading-speed constant. 0 = default.
	WordsPerMinute int `yaml:"wordsPerMinute"`

	// ColabBaseURL is the prefix Colab badge targets are built from.
	// Empty = built-in default.
	ColabBaseURL string `yaml:"colabBaseURL"`

	// IssueURL is the Suggest-an-Edit badge target. Empty = built-in default.
	IssueURL string `yaml:"issueURL"`

	// Footer controls the fragment appended to every chapter.
	Footer FooterConfig `yaml:"footer"`

	// Authors maps a chapter path to its attribution list, used for
	// chapters that carry no author metadata of their own.
	Authors map[string][]Author `yaml:"authors"`
}

// FooterConfig defines footer options.
type FooterConfig struct {
	// Enabled defaults to true when unset.
	Enabled *bool `yaml:"enabled"`
}

// Author is one attribution entry.
type Author struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FooterEnabled resolves the footer toggle with its default.
func (c *Config) FooterEnabled() bool {
	return c.Footer.Enabled == nil || *c.Footer.Enabled
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's own flag
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads the config file at path, returning defaults when the
// file does not exist. Parse and validation errors still fail.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// validate checks field ranges and lengths.
func (c *Config) validate() error {
	if c.WordsPerMinute < 0 {
		return fmt.Errorf("%w: wordsPerMinute must not be negative", ErrInvalidConfig)
	}
	if len(c.ColabBaseURL) > MaxURLLength {
		return fmt.Errorf("%w: colabBaseURL exceeds %d characters", ErrInvalidConfig, MaxURLLength)
	}
	if len(c.IssueURL) > MaxURLLength {
		return fmt.Errorf("%w: issueURL exceeds %d characters", ErrInvalidConfig, MaxURLLength)
	}
	for path, authors := range c.Authors {
		for _, a := range authors {
			if a.Name == "" {
				return fmt.Errorf("%w: author for %q has no name", ErrInvalidConfig, path)
			}
			if len(a.Name) > MaxAuthorNameLength {
				return fmt.Errorf("%w: author name for %q exceeds %d characters", ErrInvalidConfig, path, MaxAuthorNameLength)
			}
			if len(a.URL) > MaxURLLength {
				return fmt.Errorf("%w: author URL for %q exceeds %d characters", ErrInvalidConfig, path, MaxURLLength)
			}
		}
	}
	return nil
}
