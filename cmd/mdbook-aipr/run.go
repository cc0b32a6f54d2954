package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	aipr "github.com/alnah/mdbook-aipr"
	"github.com/alnah/mdbook-aipr/internal/config"
)

// ErrMissingArgument indicates a subcommand was called without its
// required positional argument.
var ErrMissingArgument = errors.New("missing argument")

// run dispatches on the first positional argument.
func run(flags cliFlags, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "supports":
			// Every renderer is supported: the transform is plain text.
			return nil
		case "preview":
			if len(args) < 2 {
				return fmt.Errorf("%w: preview <chapter.md>", ErrMissingArgument)
			}
			return runPreview(flags, args[1], stdout)
		}
	}
	return runPreprocess(flags, stdin, stdout)
}

// runPreprocess reads the [context, book] tuple, transforms the book, and
// writes it back.
func runPreprocess(flags cliFlags, stdin io.Reader, stdout io.Writer) error {
	ctx, book, err := readInput(stdin)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags, ctx.Root)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "mdbook-aipr: renderer=%s chapters=%d\n", ctx.Renderer, countChapters(book.Sections))
	}

	pre := aipr.New(engineOptions(cfg)...)
	book, err = pre.Run(book)
	if err != nil {
		return err
	}

	return writeBook(stdout, book)
}

// loadConfig resolves the config file: the --config flag when given, else
// aipr.yaml next to the book root, else defaults.
func loadConfig(flags cliFlags, root string) (*config.Config, error) {
	if flags.config != "" {
		return config.Load(flags.config)
	}
	return config.LoadOrDefault(filepath.Join(root, config.DefaultFileName))
}

// engineOptions translates file config into engine options.
func engineOptions(cfg *config.Config) []aipr.Option {
	var opts []aipr.Option
	if cfg.WordsPerMinute > 0 {
		opts = append(opts, aipr.WithWordsPerMinute(cfg.WordsPerMinute))
	}
	if cfg.ColabBaseURL != "" {
		opts = append(opts, aipr.WithColabBaseURL(cfg.ColabBaseURL))
	}
	if cfg.IssueURL != "" {
		opts = append(opts, aipr.WithIssueURL(cfg.IssueURL))
	}
	if !cfg.FooterEnabled() {
		opts = append(opts, aipr.WithoutFooter())
	}
	if len(cfg.Authors) > 0 {
		authors := make(map[string][]aipr.Author, len(cfg.Authors))
		for path, list := range cfg.Authors {
			converted := make([]aipr.Author, len(list))
			for i, a := range list {
				converted[i] = aipr.Author{Name: a.Name, URL: a.URL}
			}
			authors[path] = converted
		}
		opts = append(opts, aipr.WithAuthors(authors))
	}
	return opts
}

// countChapters counts chapters recursively for verbose reporting.
func countChapters(items []aipr.BookItem) int {
	n := 0
	for _, it := range items {
		if it.Chapter != nil {
			n += 1 + countChapters(it.Chapter.SubItems)
		}
	}
	return n
}
