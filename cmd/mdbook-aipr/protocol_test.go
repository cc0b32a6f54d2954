package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	aipr "github.com/alnah/mdbook-aipr"
)

const sampleInput = `[
	{
		"root": "/book",
		"config": {"book": {"title": "AI Pocket Reference"}},
		"renderer": "html",
		"mdbook_version": "0.4.40"
	},
	{
		"sections": [
			{"Chapter": {
				"name": "LoRA",
				"content": "{{#aipr_header}}\n\n# LoRA\n",
				"sub_items": [],
				"path": "nlp/lora.md",
				"source_path": "nlp/lora.md",
				"parent_names": []
			}},
			"Separator"
		]
	}
]`

func TestReadInput(t *testing.T) {
	t.Parallel()

	ctx, book, err := readInput(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("readInput returned error: %v", err)
	}

	if ctx.Root != "/book" || ctx.Renderer != "html" {
		t.Errorf("context = %+v", ctx)
	}
	if len(book.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(book.Sections))
	}
	if book.Sections[0].Chapter == nil || book.Sections[0].Chapter.Name != "LoRA" {
		t.Errorf("chapter not decoded: %+v", book.Sections[0])
	}
}

func TestReadInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: "not json"},
		{name: "wrong arity", input: `[{"root": "/book"}]`},
		{name: "book not an object", input: `[{"root": "/book"}, 42]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := readInput(strings.NewReader(tt.input))
			if !errors.Is(err, ErrDecodeInput) {
				t.Errorf("readInput(%q) error = %v, want ErrDecodeInput", tt.input, err)
			}
		})
	}
}

func TestWriteBookRoundTrip(t *testing.T) {
	t.Parallel()

	path := "intro.md"
	book := aipr.Book{Sections: []aipr.BookItem{
		{Chapter: &aipr.Chapter{Name: "Intro", Content: "hello", Path: &path}},
		{Separator: true},
	}}

	var buf bytes.Buffer
	if err := writeBook(&buf, book); err != nil {
		t.Fatalf("writeBook returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"Chapter"`) || !strings.Contains(out, `"Separator"`) {
		t.Errorf("encoded book missing variants: %s", out)
	}
}
