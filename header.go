package aipr

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/mdbook-aipr/internal/assets"
)

// headerRenderer defines the contract for rendering the chapter header
// fragment.
type headerRenderer interface {
	RenderHeader(data headerData) (string, error)
}

// headerData holds the computed slots substituted into the header template.
// Empty string fields and empty slices omit their section.
type headerData struct {
	Title       string
	Authors     []Author
	ReadingTime string // formatted, e.g. "3 min"
	ColabURL    string
	IssueURL    string
}

// templateHeaderRenderer renders the header via the embedded template.
type templateHeaderRenderer struct {
	tmpl *template.Template
}

// newTemplateHeaderRenderer creates a templateHeaderRenderer with the
// embedded header template. Panics if the template cannot be loaded or
// parsed (programmer error).
func newTemplateHeaderRenderer() *templateHeaderRenderer {
	content, err := assets.LoadTemplate("header")
	if err != nil {
		panic("failed to load header template: " + err.Error())
	}
	tmpl, err := template.New("header").Parse(content)
	if err != nil {
		panic("failed to parse header template: " + err.Error())
	}
	return &templateHeaderRenderer{tmpl: tmpl}
}

// RenderHeader substitutes the computed slots into the fixed header
// structure.
func (r *templateHeaderRenderer) RenderHeader(data headerData) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHeaderRender, err)
	}
	return b.String(), nil
}

// colabURL joins the configured base prefix with the notebook path from the
// macro. A single slash separates the two regardless of how either side is
// written.
func colabURL(base, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
