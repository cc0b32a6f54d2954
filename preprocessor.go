package aipr

import (
	"fmt"
	"strings"

	"github.com/alnah/mdbook-aipr/internal/assets"
)

// Preprocessor orchestrates the chapter transformation pipeline.
type Preprocessor struct {
	cfg    engineConfig
	links  linkRewriter
	header headerRenderer
	footer string
}

// New creates a Preprocessor with default configuration.
// Use options to customize behavior (e.g., WithWordsPerMinute).
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		cfg: engineConfig{
			wordsPerMinute: DefaultWordsPerMinute,
			colabBaseURL:   DefaultColabBaseURL,
			issueURL:       DefaultIssueURL,
			appendFooter:   true,
		},
		links:  newNewTabRewriter(),
		header: newTemplateHeaderRenderer(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.cfg.appendFooter {
		footer, err := assets.LoadTemplate("footer")
		if err != nil {
			panic("failed to load footer fragment: " + err.Error())
		}
		p.footer = footer
	}

	return p
}

// Run transforms every chapter of the book, depth-first over sub-chapters,
// and returns the book with chapter content replaced. Structure (ordering,
// nesting, part boundaries) is preserved exactly; separators and part
// titles pass through untouched.
//
// All chapter texts are computed before any are committed, so a failure
// anywhere leaves the input book observably untransformed. The first error
// encountered in document order is the one returned.
func (p *Preprocessor) Run(book Book) (Book, error) {
	type update struct {
		chapter *Chapter
		content string
	}
	var updates []update

	var walk func(items []BookItem) error
	walk = func(items []BookItem) error {
		for i := range items {
			ch := items[i].Chapter
			if ch == nil {
				continue
			}
			content, err := p.transformChapter(ch)
			if err != nil {
				return err
			}
			updates = append(updates, update{chapter: ch, content: content})
			if err := walk(ch.SubItems); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(book.Sections); err != nil {
		return book, err
	}

	for _, u := range updates {
		u.chapter.Content = u.content
	}
	return book, nil
}

// transformChapter expands header macros, rewrites external links over the
// full resulting text, and appends the footer fragment. Errors carry the
// chapter identity.
func (p *Preprocessor) transformChapter(ch *Chapter) (string, error) {
	content := ch.Content

	matches, err := findHeaderMacros(content)
	if err != nil {
		return "", fmt.Errorf("chapter %q: %w", ch.Identity(), err)
	}

	if len(matches) > 0 {
		// The estimate reflects the chapter as authored; every invocation
		// in the same chapter sees the same word count.
		words := countWords(content)

		var b strings.Builder
		prev := 0
		for _, m := range matches {
			fragment, err := p.renderHeader(ch, m.settings, words)
			if err != nil {
				return "", fmt.Errorf("chapter %q: %w", ch.Identity(), err)
			}
			b.WriteString(content[prev:m.start])
			b.WriteString(fragment)
			prev = m.end
		}
		b.WriteString(content[prev:])
		content = b.String()
	}

	content = p.links.RewriteLinks(content)

	if p.cfg.appendFooter {
		content += p.footer
	}
	return content, nil
}

// renderHeader builds the slot data for one macro invocation and renders it.
func (p *Preprocessor) renderHeader(ch *Chapter, settings HeaderSettings, words int) (string, error) {
	data := headerData{
		Title:    ch.Name,
		Authors:  p.chapterAuthors(ch),
		ColabURL: colabURL(p.cfg.colabBaseURL, settings.Colab),
	}
	if settings.SubmitIssue {
		data.IssueURL = p.cfg.issueURL
	}
	if settings.ReadingTime {
		if minutes := ReadingTime(words, p.cfg.wordsPerMinute); minutes > 0 {
			data.ReadingTime = fmt.Sprintf("%d min", minutes)
		}
	}
	return p.header.RenderHeader(data)
}

// chapterAuthors resolves author attribution: chapter metadata first, then
// the configured per-path mapping. Missing metadata is an empty list, never
// an error.
func (p *Preprocessor) chapterAuthors(ch *Chapter) []Author {
	if len(ch.Authors) > 0 {
		return ch.Authors
	}
	if ch.Path != nil {
		return p.cfg.authors[*ch.Path]
	}
	return nil
}
