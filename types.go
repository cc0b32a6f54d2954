package aipr

// DefaultWordsPerMinute is the reading-speed constant used for reading-time
// estimates unless overridden with WithWordsPerMinute.
const DefaultWordsPerMinute = 200

// Default URLs for the rendered header badges. Both can be overridden with
// options to point the badges at a different book or notebook repository.
const (
	DefaultColabBaseURL = "https://colab.research.google.com/github/VectorInstitute/ai-pocket-reference-code/blob/main/notebooks/"
	DefaultIssueURL     = "https://github.com/VectorInstitute/ai-pocket-reference/issues/new?template=edit-request.yml"
)

// HeaderSettings is the parsed result of one {{#aipr_header}} invocation.
type HeaderSettings struct {
	Colab       string // relative notebook path; empty = no Colab badge
	ReadingTime bool   // render the reading-time line (default true)
	SubmitIssue bool   // render the Suggest-an-Edit badge (default true)
}

// defaultHeaderSettings returns the settings applied when the macro has no
// arguments.
func defaultHeaderSettings() HeaderSettings {
	return HeaderSettings{ReadingTime: true, SubmitIssue: true}
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// engineConfig holds internal configuration for the Preprocessor.
type engineConfig struct {
	wordsPerMinute int
	colabBaseURL   string
	issueURL       string
	appendFooter   bool
	authors        map[string][]Author
}

// WithWordsPerMinute sets the reading-speed constant.
// Panics if wpm <= 0 (programmer error, similar to time.NewTicker).
func WithWordsPerMinute(wpm int) Option {
	if wpm <= 0 {
		panic("aipr: WithWordsPerMinute value must be positive")
	}
	return func(p *Preprocessor) {
		p.cfg.wordsPerMinute = wpm
	}
}

// WithColabBaseURL sets the URL prefix Colab badge targets are built from.
// The configured colab path is appended to it verbatim.
func WithColabBaseURL(url string) Option {
	return func(p *Preprocessor) {
		p.cfg.colabBaseURL = url
	}
}

// WithIssueURL sets the target of the Suggest-an-Edit badge.
func WithIssueURL(url string) Option {
	return func(p *Preprocessor) {
		p.cfg.issueURL = url
	}
}

// WithoutFooter disables the footer fragment appended to every chapter.
func WithoutFooter() Option {
	return func(p *Preprocessor) {
		p.cfg.appendFooter = false
	}
}

// WithAuthors supplies author attribution per chapter path. Entries are
// used for chapters that carry no author metadata of their own.
func WithAuthors(authors map[string][]Author) Option {
	return func(p *Preprocessor) {
		p.cfg.authors = authors
	}
}
