package main

import (
	"errors"
	"os"

	aipr "github.com/alnah/mdbook-aipr"
	"github.com/alnah/mdbook-aipr/internal/config"
)

// Exit codes for mdbook-aipr.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or macro arguments
	ExitIO      = 3 // Read/decode/write failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O and protocol errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrDecodeInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadChapter) ||
		errors.Is(err, ErrWritePreview) {
		return ExitIO
	}

	// Usage/config/content errors (exit 2)
	if errors.Is(err, aipr.ErrMalformedMacroArguments) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrMissingArgument) {
		return ExitUsage
	}

	return ExitGeneral
}
