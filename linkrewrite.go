package aipr

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/alnah/mdbook-aipr/internal/assets"
)

// Markdown link span: non-empty display text without ']', non-empty URL
// without whitespace or ')'.
var mdLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// linkRewriter defines the contract for link rewriting.
type linkRewriter interface {
	RewriteLinks(content string) string
}

// newTabRewriter replaces external markdown links with anchors that open in
// a new tab.
type newTabRewriter struct {
	tmpl *template.Template
}

// newNewTabRewriter creates a newTabRewriter with the embedded link template.
// Panics if the template cannot be loaded or parsed (programmer error).
func newNewTabRewriter() *newTabRewriter {
	content, err := assets.LoadTemplate("link")
	if err != nil {
		panic("failed to load link template: " + err.Error())
	}
	tmpl, err := template.New("link").Parse(strings.TrimRight(content, "\n"))
	if err != nil {
		panic("failed to parse link template: " + err.Error())
	}
	return &newTabRewriter{tmpl: tmpl}
}

// linkData holds one matched link for template substitution.
type linkData struct {
	Text string
	URL  string
}

// RewriteLinks replaces every external [text](url) span with a new-tab
// anchor. Matches are scanned left to right and are non-overlapping; text
// outside matches passes through byte for byte. Skipped spans:
//
//   - URLs without an http:// or https:// scheme (internal anchors)
//   - spans preceded by '\' (escaped) or '!' (images)
//   - spans inside fenced code blocks or inline code
//
// Zero matches is the identity transform.
func (r *newTabRewriter) RewriteLinks(content string) string {
	matches := mdLinkPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	code := codeSpans(content)

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		url := content[m[4]:m[5]]

		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			continue
		}
		if start > 0 && (content[start-1] == '\\' || content[start-1] == '!') {
			continue
		}
		if containsOffset(code, start) {
			continue
		}

		var anchor strings.Builder
		data := linkData{Text: content[m[2]:m[3]], URL: url}
		if err := r.tmpl.Execute(&anchor, data); err != nil {
			// A fixed template over two strings cannot fail at execution;
			// keep the original span if it somehow does.
			continue
		}

		b.WriteString(content[prev:start])
		b.WriteString(anchor.String())
		prev = end
	}

	if prev == 0 {
		return content
	}
	b.WriteString(content[prev:])
	return b.String()
}
