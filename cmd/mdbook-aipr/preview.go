package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	aipr "github.com/alnah/mdbook-aipr"
	"github.com/alnah/mdbook-aipr/internal/preview"
)

// Sentinel errors for the preview subcommand.
var (
	ErrReadChapter      = errors.New("failed to read chapter file")
	ErrWritePreview     = errors.New("failed to write preview file")
	ErrInvalidExtension = errors.New("chapter file must have a .md or .markdown extension")
)

// runPreview transforms a single chapter file and renders it as a
// standalone HTML page.
func runPreview(flags cliFlags, chapterPath string, stdout io.Writer) error {
	ext := filepath.Ext(chapterPath)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}

	raw, err := os.ReadFile(chapterPath) // #nosec G304 -- path comes from the operator's own argument
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadChapter, err)
	}

	cfg, err := loadConfig(flags, filepath.Dir(chapterPath))
	if err != nil {
		return err
	}

	// Wrap the file in a single-chapter book so the exact build pipeline
	// runs over it.
	name := chapterTitle(chapterPath, string(raw))
	relPath := filepath.Base(chapterPath)
	book := aipr.Book{Sections: []aipr.BookItem{{Chapter: &aipr.Chapter{
		Name:    name,
		Content: string(raw),
		Path:    &relPath,
	}}}}

	pre := aipr.New(engineOptions(cfg)...)
	book, err = pre.Run(book)
	if err != nil {
		return err
	}

	page, err := preview.NewRenderer().Render(context.Background(), name, book.Sections[0].Chapter.Content)
	if err != nil {
		return err
	}

	page, err = preview.AbsolutizePaths(page, filepath.Dir(chapterPath))
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err = io.WriteString(stdout, page)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWritePreview, err)
		}
		return nil
	}

	if err := os.WriteFile(flags.output, []byte(page), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "mdbook-aipr: wrote %s\n", flags.output)
	}
	return nil
}

// chapterTitle takes the first ATX heading, falling back to the file name.
func chapterTitle(path, content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
