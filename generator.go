package src2doc

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/alnah/go-src2doc/internal/assets"
	"github.com/alnah/go-src2doc/internal/fileutil"
	"github.com/alnah/go-src2doc/internal/parse"
	"github.com/alnah/go-src2doc/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.ProseRenderer     = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.CodeHighlighter   = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.DocumentAssembler = (*pipeline.TemplateAssembler)(nil)
	_ AssetLoader                = (*assets.EmbeddedLoader)(nil)
	_ AssetLoader                = (*assets.AssetResolver)(nil)
)

// Generator orchestrates the source-to-documentation pipeline.
// Create with NewGenerator(), call Generate() once per source file, and
// Close() when done. A Generator is not safe for concurrent use; see
// GeneratorPool for parallel batches.
type Generator struct {
	cfg         generatorConfig
	assetLoader AssetLoader
	renderer    *pipeline.BlockRenderer
	assembler   pipeline.DocumentAssembler
	exporter    pdfExporter
}

// NewGenerator creates a Generator with default configuration: Markdown
// prose, highlighted code, the built-in style and template, no PDF export.
// Use options to customize behavior (e.g., WithStyle, WithTemplate, WithPDF).
// Returns error if asset loading or template parsing fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			markdown:  true,
			highlight: true,
			timeout:   defaultTimeout,
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(g)
	}

	// Handle WithAssetPath: resolve to a custom-first loader
	if g.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.assetLoader = resolver
	}

	// Handle WithAssetLoader: an injected loader wins over WithAssetPath
	if g.cfg.loader != nil {
		g.assetLoader = g.cfg.loader
	}

	// Resolve style input (name, path, or CSS content) to CSS text
	if err := g.resolveStyle(); err != nil {
		return nil, err
	}

	templateName := g.cfg.templateName
	if templateName == "" {
		templateName = DefaultTemplateName
	}
	templateHTML, err := g.assetLoader.LoadTemplate(templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", templateName, err)
	}

	assembler, err := pipeline.NewTemplateAssembler(templateHTML)
	if err != nil {
		return nil, err
	}
	g.assembler = assembler

	g.renderer = pipeline.NewBlockRenderer(
		pipeline.NewGoldmarkRenderer(),
		pipeline.NewChromaHighlighter(),
		g.cfg.markdown,
		g.cfg.highlight,
	)

	// Create PDF exporter if enabled and not injected (e.g., by tests)
	if g.cfg.pdf && g.exporter == nil {
		g.exporter = newRodExporter(g.cfg.timeout)
	}

	return g, nil
}

// Generate runs the full pipeline for one source file and returns the result
// containing the HTML page and, when PDF export is enabled, the PDF bytes.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Path == "" {
		return nil, ErrMissingPath
	}

	// Segment the source into prose/code blocks
	blocks := parse.Segment(input.Source)

	// Render each block into a page section
	sections := make([]pipeline.Section, 0, len(blocks))
	for i, block := range blocks {
		rendered, err := g.renderer.Render(ctx, block, input.Path)
		if err != nil {
			return nil, fmt.Errorf("rendering section %d: %w", i+1, err)
		}
		sections = append(sections, pipeline.Section{
			Index: i + 1,
			Prose: template.HTML(rendered.Prose),
			Code:  template.HTML(rendered.Code),
		})
	}

	// Build combined CSS (generator style + user CSS)
	// Order matters: generator style first (base), user CSS last (can override)
	cssContent := g.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	title := input.Title
	if title == "" {
		title = filepath.Base(input.Path)
	}

	// Assemble the page
	page, err := g.assembler.Assemble(ctx, pipeline.DocumentData{
		Title:    title,
		Path:     input.Path,
		CSS:      template.CSS(cssContent),
		Sections: sections,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	res := &Result{
		HTML: []byte(page),
	}

	// Export PDF if enabled
	if g.exporter != nil {
		pdfBytes, err := g.exporter.ExportPDF(ctx, page, filepath.Dir(input.Path))
		if err != nil {
			return nil, fmt.Errorf("exporting PDF: %w", err)
		}
		res.PDF = pdfBytes
	}

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.exporter != nil {
		return g.exporter.Close()
	}
	return nil
}

// resolveStyle resolves the style option (name, path, or CSS content) to CSS
// text. Called during NewGenerator after options are applied and the asset
// loader is configured.
func (g *Generator) resolveStyle() error {
	if g.cfg.noStyle {
		return nil
	}

	input := g.cfg.style
	if input == "" {
		input = DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		g.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := g.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	g.cfg.resolvedStyle = css
	return nil
}
