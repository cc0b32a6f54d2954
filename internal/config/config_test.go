package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aipr.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
wordsPerMinute: 250
colabBaseURL: https://colab.test/nb/
issueURL: https://github.test/issues/new
footer:
  enabled: false
authors:
  nlp/lora.md:
    - name: Ada Lovelace
      url: https://github.com/ada
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.WordsPerMinute != 250 {
		t.Errorf("WordsPerMinute = %d, want 250", cfg.WordsPerMinute)
	}
	if cfg.ColabBaseURL != "https://colab.test/nb/" {
		t.Errorf("ColabBaseURL = %q", cfg.ColabBaseURL)
	}
	if cfg.FooterEnabled() {
		t.Error("FooterEnabled() = true, want false")
	}
	authors := cfg.Authors["nlp/lora.md"]
	if len(authors) != 1 || authors[0].Name != "Ada Lovelace" {
		t.Errorf("Authors = %+v", cfg.Authors)
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadOrDefault returned error: %v", err)
		}
		if cfg.WordsPerMinute != 0 || cfg.ColabBaseURL != "" || !cfg.FooterEnabled() {
			t.Errorf("defaults not applied: %+v", cfg)
		}
	})

	t.Run("parse error still fails", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "wordsPerMinute: [not a number\n")
		if _, err := LoadOrDefault(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bogus: 1\n")
	if _, err := Load(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "negative wpm", content: "wordsPerMinute: -1\n"},
		{
			name:    "oversized URL",
			content: "colabBaseURL: https://" + strings.Repeat("a", MaxURLLength) + "\n",
		},
		{
			name:    "author without name",
			content: "authors:\n  a.md:\n    - url: https://x\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
