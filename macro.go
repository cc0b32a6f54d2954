package aipr

import (
	"fmt"
	"regexp"
	"strings"
)

// headerMacroName is the single macro the engine recognizes.
const headerMacroName = "aipr_header"

// Precompiled macro pattern. The first alternative matches the escaped form
// \{{#...}}, which passes through untouched (no capture groups set). The
// second captures the macro name and its raw argument string.
var macroPattern = regexp.MustCompile(`\\\{\{#[^}]*\}\}|\{\{\s*#([a-zA-Z0-9_]+)([^}]*)\}\}`)

// macroMatch is one located {{#aipr_header}} invocation.
type macroMatch struct {
	start, end int
	settings   HeaderSettings
}

// findHeaderMacros scans content for header macro invocations and parses
// their argument lists. Escaped macros, unknown macro names, and macros
// inside fenced code blocks are skipped. Returns ErrMalformedMacroArguments
// (wrapped) on the first bad argument list.
func findHeaderMacros(content string) ([]macroMatch, error) {
	raw := macroPattern.FindAllStringSubmatchIndex(content, -1)
	if len(raw) == 0 {
		return nil, nil
	}

	fenced := fencedBlockSpans(content)

	var matches []macroMatch
	for _, m := range raw {
		if m[2] < 0 {
			// Escaped form: left as-is.
			continue
		}
		if content[m[2]:m[3]] != headerMacroName {
			continue
		}
		if containsOffset(fenced, m[0]) {
			continue
		}

		settings, err := parseHeaderSettings(content[m[4]:m[5]])
		if err != nil {
			return nil, err
		}
		matches = append(matches, macroMatch{start: m[0], end: m[1], settings: settings})
	}
	return matches, nil
}

// parseHeaderSettings parses the comma-separated key=value argument list of
// one macro invocation. Whitespace around keys, values, and separators is
// insignificant. An empty list yields the defaults.
func parseHeaderSettings(raw string) (HeaderSettings, error) {
	settings := defaultHeaderSettings()

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return settings, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return HeaderSettings{}, fmt.Errorf("%w: %q is not a key=value pair", ErrMalformedMacroArguments, pair)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "colab":
			if value == "" || strings.ContainsAny(value, " \t") {
				return HeaderSettings{}, fmt.Errorf("%w: colab value %q is not a path", ErrMalformedMacroArguments, value)
			}
			settings.Colab = value
		case "reading_time":
			b, err := parseBoolToken(key, value)
			if err != nil {
				return HeaderSettings{}, err
			}
			settings.ReadingTime = b
		case "submit_issue":
			b, err := parseBoolToken(key, value)
			if err != nil {
				return HeaderSettings{}, err
			}
			settings.SubmitIssue = b
		default:
			return HeaderSettings{}, fmt.Errorf("%w: unrecognized key %q", ErrMalformedMacroArguments, key)
		}
	}
	return settings, nil
}

// parseBoolToken accepts exactly "true" or "false".
func parseBoolToken(key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s value %q is not true or false", ErrMalformedMacroArguments, key, value)
	}
}
