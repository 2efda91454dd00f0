package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight indicates syntax highlighting failed.
var ErrHighlight = errors.New("syntax highlighting failed")

// CodeHighlighter abstracts code to HTML conversion. The source path guides
// language detection.
type CodeHighlighter interface {
	Highlight(ctx context.Context, code, path string) (string, error)
}

// ChromaHighlighter highlights code using chroma with CSS classes, so token
// colors come from the page stylesheet rather than inline styles.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a ChromaHighlighter.
func NewChromaHighlighter() *ChromaHighlighter {
	return &ChromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true), // the block renderer owns the <pre> wrapper
		),
	}
}

// Highlight converts code to token span markup. The lexer is picked by file
// name, then content analysis, then a plain-text fallback, so sources in
// unknown languages degrade to escaped text instead of failing.
func (h *ChromaHighlighter) Highlight(ctx context.Context, code, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}
