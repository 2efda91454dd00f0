// Package parse segments annotated source files into alternating prose and
// code blocks.
//
// A comment line whose body is empty ("//" with nothing after it) is a
// sentinel: seen after code, it closes the current block and opens the next.
// Comment lines with a body become prose, everything else stays code,
// verbatim. The marker is fixed single-line "//" syntax.
package parse

import (
	"regexp"
	"strings"
)

// Kind classifies a single source line.
type Kind int

// Line classifications. Comment checks take priority over the blank check,
// so a bare "//" is CommentStart, never Blank.
const (
	Blank Kind = iota
	CommentStart
	CommentBody
	Code
)

// String returns the classification name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case CommentStart:
		return "CommentStart"
	case CommentBody:
		return "CommentBody"
	case Code:
		return "Code"
	default:
		return "Unknown"
	}
}

var (
	// commentStart matches a comment line with no body, e.g. "//" or "  //  ".
	commentStart = regexp.MustCompile(`^\s*//\s*$`)

	// commentBody matches a comment line with a body, capturing the body with
	// the marker and one leading whitespace run removed. Checked after
	// commentStart, so the capture is never empty.
	commentBody = regexp.MustCompile(`^\s*//\s+(.*)$`)

	// lineEndings matches CRLF and lone CR line endings.
	lineEndings = regexp.MustCompile(`\r\n?`)
)

// Classify maps one line to its Kind. For CommentBody lines the second return
// value is the comment body; for Code lines it is the line verbatim; for
// Blank and CommentStart lines it is empty. A marker glued to text ("//x")
// is not a comment, it classifies as Code.
func Classify(line string) (Kind, string) {
	if commentStart.MatchString(line) {
		return CommentStart, ""
	}
	if m := commentBody.FindStringSubmatch(line); m != nil {
		return CommentBody, m[1]
	}
	if strings.TrimSpace(line) == "" {
		return Blank, ""
	}
	return Code, line
}

// Lines splits source into lines. CRLF and lone CR endings are normalized to
// LF first, and one trailing newline is dropped so a POSIX final newline does
// not produce a phantom blank line.
func Lines(source string) []string {
	normalized := lineEndings.ReplaceAllString(source, "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}
