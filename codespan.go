package aipr

import (
	"regexp"
	"strings"
)

// Fenced code block delimiter (backticks or tildes).
var fenceDelimiter = regexp.MustCompile("^(```|~~~)")

// span is a half-open byte range [start, end) within chapter content.
type span struct {
	start, end int
}

// containsOffset reports whether any span covers the byte offset.
func containsOffset(spans []span, offset int) bool {
	for _, s := range spans {
		if offset >= s.start && offset < s.end {
			return true
		}
	}
	return false
}

// fencedBlockSpans returns the byte ranges of fenced code blocks.
// An unclosed fence extends to the end of the content.
func fencedBlockSpans(content string) []span {
	var spans []span
	var open bool
	var openMarker string
	var start int

	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if m := fenceDelimiter.FindString(trimmed); m != "" {
			if !open {
				open = true
				openMarker = m
				start = offset
			} else if m == openMarker {
				open = false
				spans = append(spans, span{start: start, end: offset + len(line)})
			}
		}
		offset += len(line)
	}

	if open {
		spans = append(spans, span{start: start, end: len(content)})
	}
	return spans
}

// codeSpans returns the byte ranges of fenced code blocks plus inline code
// spans outside them. Inline spans pair a backtick run with the next run of
// equal length; an unpaired run is treated as literal text.
func codeSpans(content string) []span {
	spans := fencedBlockSpans(content)

	i := 0
	for i < len(content) {
		if containsOffset(spans, i) {
			i++
			continue
		}
		if content[i] != '`' {
			i++
			continue
		}

		runStart := i
		for i < len(content) && content[i] == '`' {
			i++
		}
		runLen := i - runStart

		if end, ok := findClosingRun(content, i, runLen, spans); ok {
			spans = append(spans, span{start: runStart, end: end})
			i = end
		}
	}
	return spans
}

// findClosingRun locates the next backtick run of exactly length n starting
// at or after from, skipping fenced blocks. Returns the offset just past the
// closing run.
func findClosingRun(content string, from, n int, fenced []span) (int, bool) {
	i := from
	for i < len(content) {
		if content[i] != '`' || containsOffset(fenced, i) {
			i++
			continue
		}
		runStart := i
		for i < len(content) && content[i] == '`' {
			i++
		}
		if i-runStart == n {
			return i, true
		}
	}
	return 0, false
}
