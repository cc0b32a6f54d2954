package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	aipr "github.com/alnah/mdbook-aipr"
)

// Sentinel errors for the protocol layer.
var (
	ErrDecodeInput = errors.New("failed to decode preprocessor input")
	ErrWriteOutput = errors.New("failed to write transformed book")
)

// buildContext is the host tool's invocation context. Only the fields the
// preprocessor consumes are decoded; the rest of the config table passes
// through untouched.
type buildContext struct {
	Root     string          `json:"root"`
	Config   json.RawMessage `json:"config"`
	Renderer string          `json:"renderer"`
	Version  string          `json:"mdbook_version"`
}

// readInput decodes the [context, book] JSON tuple the host tool writes to
// the preprocessor's stdin.
func readInput(r io.Reader) (*buildContext, aipr.Book, error) {
	var tuple []json.RawMessage
	if err := json.NewDecoder(r).Decode(&tuple); err != nil {
		return nil, aipr.Book{}, fmt.Errorf("%w: %v", ErrDecodeInput, err)
	}
	if len(tuple) != 2 {
		return nil, aipr.Book{}, fmt.Errorf("%w: expected [context, book], got %d elements", ErrDecodeInput, len(tuple))
	}

	var ctx buildContext
	if err := json.Unmarshal(tuple[0], &ctx); err != nil {
		return nil, aipr.Book{}, fmt.Errorf("%w: context: %v", ErrDecodeInput, err)
	}

	var book aipr.Book
	if err := json.Unmarshal(tuple[1], &book); err != nil {
		return nil, aipr.Book{}, fmt.Errorf("%w: book: %v", ErrDecodeInput, err)
	}

	return &ctx, book, nil
}

// writeBook encodes the transformed book to the host tool's stdout.
func writeBook(w io.Writer, book aipr.Book) error {
	if err := json.NewEncoder(w).Encode(book); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
