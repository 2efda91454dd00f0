package src2doc

import "time"

// Input contains generation parameters for one source file.
type Input struct {
	Source string // source file content (empty files are valid)
	Path   string // source file path, drives language detection and the default title (required)
	Title  string // page title (optional, defaults to the base name of Path)
	CSS    string // extra CSS appended after the stylesheet (optional)
}

// Result contains the generated documentation page.
type Result struct {
	HTML []byte
	PDF  []byte // set only when PDF export is enabled
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	markdown      bool
	highlight     bool
	style         string // as given: a name, a path, or CSS text
	resolvedStyle string // always CSS text, set during NewGenerator
	noStyle       bool
	templateName  string
	assetPath     string
	loader        AssetLoader
	pdf           bool
	timeout       time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithMarkdown toggles Markdown rendering of prose.
// When disabled, prose reaches the page as plain text.
func WithMarkdown(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.markdown = enabled
	}
}

// WithHighlighting toggles syntax highlighting of code.
// When disabled, code is HTML-escaped instead of tokenized.
func WithHighlighting(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.highlight = enabled
	}
}

// WithStyle selects the page stylesheet. Accepts an embedded style name
// ("classic"), a path to a .css file, or raw CSS text.
func WithStyle(style string) Option {
	return func(g *Generator) {
		g.cfg.style = style
	}
}

// WithoutStyle produces pages without any stylesheet.
func WithoutStyle() Option {
	return func(g *Generator) {
		g.cfg.noStyle = true
	}
}

// WithTemplate selects the page template by name.
func WithTemplate(name string) Option {
	return func(g *Generator) {
		g.cfg.templateName = name
	}
}

// WithAssetPath configures a directory of custom styles and templates.
// Names not found there fall back to the embedded assets.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithAssetLoader injects a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.cfg.loader = loader
	}
}

// WithPDF enables PDF export alongside HTML. Requires Chrome/Chromium.
func WithPDF() Option {
	return func(g *Generator) {
		g.cfg.pdf = true
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("src2doc: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}
