package aipr

import "testing"

func TestReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    int
		wpm      int
		expected int
	}{
		{name: "empty content", words: 0, wpm: 200, expected: 0},
		{name: "negative guarded", words: -5, wpm: 200, expected: 0},
		{name: "single word rounds up to a minute", words: 1, wpm: 200, expected: 1},
		{name: "just under one minute", words: 199, wpm: 200, expected: 1},
		{name: "exactly one minute", words: 200, wpm: 200, expected: 1},
		{name: "just over one minute", words: 201, wpm: 200, expected: 2},
		{name: "ceiling behavior", words: 401, wpm: 200, expected: 3},
		{name: "alternate speed", words: 300, wpm: 100, expected: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ReadingTime(tt.words, tt.wpm); got != tt.expected {
				t.Errorf("ReadingTime(%d, %d) = %d, want %d", tt.words, tt.wpm, got, tt.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "whitespace only", content: "  \n\t ", expected: 0},
		{name: "plain words", content: "one two three", expected: 3},
		{name: "whitespace runs collapse", content: "one\n\ntwo   three\t four", expected: 4},
		{name: "macro token stripped", content: "{{#aipr_header}} one two", expected: 2},
		{name: "macro with arguments stripped", content: "{{#aipr_header colab=nlp/lora.ipynb}}\none two", expected: 2},
		{name: "link counts display text only", content: "see [the docs](https://fake.io) here", expected: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := countWords(tt.content); got != tt.expected {
				t.Errorf("countWords(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}
