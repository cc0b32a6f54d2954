package aipr

import "strings"

// ReadingTime returns the estimated minutes to read wordCount words at
// wordsPerMinute, rounding up. Any non-empty content takes at least one
// minute; zero words is zero minutes. Deterministic, no side effects.
func ReadingTime(wordCount, wordsPerMinute int) int {
	if wordCount <= 0 {
		return 0
	}
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// countWords counts whitespace-separated words after stripping macro tokens
// and reducing link markup to its display text, so the estimate reflects
// what the reader actually sees.
func countWords(content string) int {
	content = macroPattern.ReplaceAllString(content, " ")
	content = mdLinkPattern.ReplaceAllString(content, "$1")
	return len(strings.Fields(content))
}
