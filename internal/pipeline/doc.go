// Package pipeline implements the rendering half of documentation
// generation.
//
// The stages, in order:
//   - prose rendering (Markdown comment text to HTML via Goldmark)
//   - code highlighting (chroma token markup, CSS class based)
//   - block rendering (one block's prose and code, honoring the active
//     rendering configuration)
//   - document assembly (binding rendered sections into a page template)
//
// Line classification and block segmentation live in internal/parse. PDF
// rendering of finished pages is handled by the root src2doc package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// producing document markup, not page layout.
package pipeline
