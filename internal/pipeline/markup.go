package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They are
// guaranteed not to collide with document text and pass through Goldmark
// unchanged, so the ==text== syntax works without enabling raw HTML.
const (
	markStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	markEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// preprocessProse prepares comment prose for Markdown conversion.
func preprocessProse(text string) string {
	return compressBlankLines(convertHighlights(text))
}

// compressBlankLines caps runs of blank lines at one empty line, enough to
// separate paragraphs without stretching the page.
func compressBlankLines(text string) string {
	return multipleBlankLines.ReplaceAllString(text, "\n\n")
}

// convertHighlights swaps ==text== for placeholder markers.
func convertHighlights(text string) string {
	return highlightPattern.ReplaceAllString(text, markStartPlaceholder+"$1"+markEndPlaceholder)
}

// convertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark has produced its HTML, which is the second half of
// the ==highlight== feature and keeps Goldmark free of WithUnsafe.
func convertMarkPlaceholders(markup string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(markup, markStartPlaceholder, "<mark>"),
		markEndPlaceholder, "</mark>",
	)
}
