package pipeline

import (
	"context"
	"html"
	"strings"

	"github.com/alnah/go-src2doc/internal/parse"
)

// Fixed delimiters around every code column. The shape is identical whether
// the code was highlighted or merely escaped, so one stylesheet rule covers
// both.
const (
	codeBlockOpen  = `<div class="highlight"><pre>`
	codeBlockClose = `</pre></div>`
)

// RenderedBlock holds one block's markup: prose HTML and wrapped code HTML.
type RenderedBlock struct {
	Prose string
	Code  string
}

// BlockRenderer renders parse.Blocks under a fixed rendering configuration.
// Rendering one block is independent of every other block, so blocks may be
// rendered in any order or in parallel.
type BlockRenderer struct {
	prose        ProseRenderer
	highlighter  CodeHighlighter
	useMarkdown  bool
	useHighlight bool
}

// NewBlockRenderer creates a BlockRenderer. With markdown disabled the prose
// passes through as-is; with highlighting disabled the code is HTML-escaped
// instead of tokenized, never embedded raw.
func NewBlockRenderer(prose ProseRenderer, highlighter CodeHighlighter, useMarkdown, useHighlight bool) *BlockRenderer {
	return &BlockRenderer{
		prose:        prose,
		highlighter:  highlighter,
		useMarkdown:  useMarkdown,
		useHighlight: useHighlight,
	}
}

// Render produces the markup for one block. The path guides language
// detection when highlighting is enabled.
func (r *BlockRenderer) Render(ctx context.Context, block parse.Block, path string) (*RenderedBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proseText := strings.Join(block.Prose, "\n")
	codeText := strings.Join(block.Code, "\n")

	proseMarkup := proseText
	if r.useMarkdown {
		converted, err := r.prose.ToHTML(ctx, proseText)
		if err != nil {
			return nil, err
		}
		proseMarkup = converted
	}

	codeMarkup := html.EscapeString(codeText)
	if r.useHighlight {
		highlighted, err := r.highlighter.Highlight(ctx, codeText, path)
		if err != nil {
			return nil, err
		}
		codeMarkup = highlighted
	}

	return &RenderedBlock{
		Prose: proseMarkup,
		Code:  codeBlockOpen + codeMarkup + codeBlockClose,
	}, nil
}
