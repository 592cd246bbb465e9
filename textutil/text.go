// Package textutil has small helpers for cleaning and bounding text that
// came from models or users.
package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// strips leading/trailing spaces. Useful before logging or display.
func NormalizeWhitespace(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// TruncateChars truncates text to at most maxChars characters, appending an
// ellipsis when truncation happens.
func TruncateChars(text string, maxChars int) string {
	const suffix = "…"
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	if maxChars <= len([]rune(suffix)) {
		return string([]rune(suffix)[:maxChars])
	}
	return string(runes[:maxChars-1]) + suffix
}
