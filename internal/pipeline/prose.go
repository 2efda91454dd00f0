package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrProseRender indicates prose to HTML conversion failed.
var ErrProseRender = errors.New("prose rendering failed")

// ProseRenderer abstracts Markdown to HTML conversion of comment prose.
type ProseRenderer interface {
	ToHTML(ctx context.Context, text string) (string, error)
}

// GoldmarkRenderer renders prose using goldmark (pure Go). The output is an
// HTML fragment, not a complete document; the assembler owns the page shell.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// fenced-code-block highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the page stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// WithUnsafe stays off: comment prose is untrusted input, and
			// the ==highlight== feature works through placeholders instead
			// of raw HTML. Hard wraps stay off too, so consecutive comment
			// lines form one paragraph rather than a stack of <br> breaks.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// ToHTML converts prose text to an HTML fragment. Goldmark takes no
// context, so conversion runs in a goroutine and a select provides the
// cancellation point.
func (g *GoldmarkRenderer) ToHTML(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(preprocessProse(text)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrProseRender, err)}
			return
		}
		done <- result{html: convertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
