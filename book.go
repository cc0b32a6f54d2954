package aipr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Book is the root of the document tree: an ordered sequence of top-level
// items, each a chapter, a part title, or a separator.
type Book struct {
	Sections []BookItem `json:"sections"`
}

// BookItem is one entry in a book or sub-chapter list. Exactly one of the
// fields is set.
type BookItem struct {
	Chapter   *Chapter
	PartTitle string
	Separator bool
}

// Chapter is a single content unit, possibly containing nested sub-chapters.
// The JSON shape follows the mdBook preprocessor protocol.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number,omitempty"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
	Authors     []Author   `json:"authors,omitempty"`
}

// Author is one attribution entry rendered in the chapter header.
type Author struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Identity returns a human-readable identifier for error messages:
// the chapter path when present, the chapter name otherwise.
func (c *Chapter) Identity() string {
	if c.Path != nil && *c.Path != "" {
		return *c.Path
	}
	return c.Name
}

// separatorToken is the JSON encoding of a separator item.
var separatorToken = []byte(`"Separator"`)

// MarshalJSON encodes the item in the externally tagged form the host
// build tool uses: {"Chapter": {...}}, {"PartTitle": "..."}, or "Separator".
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.PartTitle != "":
		return json.Marshal(map[string]string{"PartTitle": it.PartTitle})
	default:
		return separatorToken, nil
	}
}

// UnmarshalJSON decodes the externally tagged item form.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	*it = BookItem{}
	if bytes.Equal(bytes.TrimSpace(data), separatorToken) {
		it.Separator = true
		return nil
	}

	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("decoding book item: %w", err)
	}

	switch {
	case tagged.Chapter != nil:
		it.Chapter = tagged.Chapter
	case tagged.PartTitle != nil:
		it.PartTitle = *tagged.PartTitle
	default:
		return fmt.Errorf("decoding book item: unknown variant in %s", data)
	}
	return nil
}
