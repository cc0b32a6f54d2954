package main

import (
	"fmt"
	"os"
	"testing"

	aipr "github.com/alnah/mdbook-aipr"
	"github.com/alnah/mdbook-aipr/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil is success", err: nil, expected: ExitSuccess},
		{name: "malformed macro", err: aipr.ErrMalformedMacroArguments, expected: ExitUsage},
		{
			name:     "wrapped malformed macro",
			err:      fmt.Errorf("chapter %q: %w", "bad.md", aipr.ErrMalformedMacroArguments),
			expected: ExitUsage,
		},
		{name: "config not found", err: config.ErrConfigNotFound, expected: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, expected: ExitUsage},
		{name: "invalid config", err: config.ErrInvalidConfig, expected: ExitUsage},
		{name: "bad extension", err: ErrInvalidExtension, expected: ExitUsage},
		{name: "missing argument", err: ErrMissingArgument, expected: ExitUsage},
		{name: "decode input", err: ErrDecodeInput, expected: ExitIO},
		{name: "write output", err: ErrWriteOutput, expected: ExitIO},
		{name: "read chapter", err: ErrReadChapter, expected: ExitIO},
		{name: "write preview", err: ErrWritePreview, expected: ExitIO},
		{name: "file not found", err: os.ErrNotExist, expected: ExitIO},
		{name: "unknown error", err: fmt.Errorf("boom"), expected: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
