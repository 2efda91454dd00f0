// Package src2doc generates literate documentation from annotated source
// files: comment prose and the code it describes are rendered side by side,
// one HTML page per source file.
//
// # Quick Start
//
// Create a generator, generate a page, and close when done:
//
//	gen, err := src2doc.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	source, _ := os.ReadFile("cake.js")
//	result, err := gen.Generate(ctx, src2doc.Input{
//	    Source: string(source),
//	    Path:   "cake.js",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cake.js.html", result.HTML, 0644)
//
// The result always contains the HTML page (result.HTML). With WithPDF()
// enabled it also contains the PDF bytes (result.PDF).
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Line classification (comment sentinel and body detection)
//  2. Segmentation into alternating prose/code blocks
//  3. Prose rendering via Goldmark, code highlighting via Chroma
//  4. Page assembly via html/template with the selected style and template
//  5. Optional PDF rendering via headless Chrome (go-rod)
//
// Comments open a prose run with a bare "//" line; continuation lines keep
// the "//" prefix. Everything else, including "//"-prefixed lines without a
// following space, is treated as code.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := src2doc.NewGenerator(
//	    src2doc.WithStyle("plain"),
//	    src2doc.WithTemplate("linear"),
//	    src2doc.WithMarkdown(false),
//	    src2doc.WithPDF(),
//	    src2doc.WithTimeout(2 * time.Minute),
//	)
//
// WithStyle accepts a built-in style name, a path to a .css file, or raw
// CSS. Per-file parameters are passed via Input:
//
//	result, err := gen.Generate(ctx, src2doc.Input{
//	    Source: content,
//	    Path:   "src/parser.js",          // drives language detection
//	    Title:  "The Parser",             // defaults to the file name
//	    CSS:    "td.code { width: 60%; }", // appended after the stylesheet
//	})
//
// # Parallel Processing
//
// For batch generation, use GeneratorPool to share configured instances
// across workers:
//
//	pool := src2doc.NewGeneratorPool(4, src2doc.WithPDF())
//	defer pool.Close()
//
//	gen, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(gen)
//	result, err := gen.Generate(ctx, input)
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := src2doc.NewAssetLoader("/path/to/assets")
//	gen, err := src2doc.NewGenerator(src2doc.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package src2doc
