package pipeline

// RewriteRelativePaths is exercised through its public surface; the error
// branches in parse and render are left to the html package's own tests.

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// rewriteBase returns an absolute source dir valid for the host OS.
func rewriteBase() string {
	if runtime.GOOS == "windows" {
		return `C:\src`
	}
	return "/src"
}

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	rewritten := []struct {
		name string
		html string
		want string
	}{
		{"image with dot slash", `<img src="./images/diagram.png">`, `src="file://`},
		{"image without dot slash", `<img src="images/diagram.png">`, `src="file://`},
		{"cross-page link", `<a href="./other.js.html">Link</a>`, `href="file://`},
		{"nested element", `<div><p><img src="./nested.png"></p></div>`, `src="file://`},
		{"deep subdirectory", `<img src="images/sub/deep/file.png">`, `src="file://`},
	}
	for _, tt := range rewritten {
		t.Run("rewrites "+tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, rewriteBase())
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteRelativePaths(%q) = %q, want to contain %q", tt.html, got, tt.want)
			}
		})
	}

	// For these the attribute must come back byte for byte. The last two are
	// traversal attempts; leaving them alone is the containment check working.
	untouched := []struct {
		name string
		html string
		keep string
	}{
		{"absolute path", `<img src="/abs/diagram.png">`, `src="/abs/diagram.png"`},
		{"http URL", `<img src="https://example.com/logo.png">`, `src="https://example.com/logo.png"`},
		{"data URI", `<img src="data:image/png;base64,ABC123">`, `src="data:image/png;base64,ABC123"`},
		{"file URL", `<img src="file:///already/absolute.png">`, `src="file:///already/absolute.png"`},
		{"protocol-relative URL", `<img src="//cdn.example.com/logo.png">`, `src="//cdn.example.com/logo.png"`},
		{"section anchor", `<a href="#section-3">&#182;</a>`, `href="#section-3"`},
		{"external link", `<a href="https://example.com">External</a>`, `href="https://example.com"`},
		{"video source", `<video src="./clip.mp4"></video>`, `src="./clip.mp4"`},
		{"script source", `<script src="./script.js"></script>`, `src="./script.js"`},
		{"empty attribute", `<img src="">`, `src=""`},
		{"parent traversal", `<img src="../../../etc/passwd">`, `src="../../../etc/passwd"`},
		{"traversal after subdir", `<img src="images/../../../etc/passwd">`, `src="images/../../../etc/passwd"`},
	}
	for _, tt := range untouched {
		t.Run("keeps "+tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, rewriteBase())
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.keep) {
				t.Errorf("RewriteRelativePaths(%q) = %q, want %q intact", tt.html, got, tt.keep)
			}
		})
	}

	t.Run("empty source dir disables rewriting", func(t *testing.T) {
		t.Parallel()

		in := `<img src="./diagram.png">`
		got, err := RewriteRelativePaths(in, "")
		if err != nil {
			t.Fatalf("RewriteRelativePaths() error = %v", err)
		}
		if got != in {
			t.Errorf("RewriteRelativePaths() = %q, want the input unchanged", got)
		}
	})
}

func TestRewriteRelativePathsFullDocument(t *testing.T) {
	t.Parallel()

	page := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body><img src="./diagram.png"></body>
</html>`

	got, err := RewriteRelativePaths(page, rewriteBase())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}

	// html.Render may lowercase the DOCTYPE.
	if !strings.Contains(strings.ToLower(got), "doctype") {
		t.Error("full document should keep its DOCTYPE")
	}
	if !strings.Contains(got, "<html") {
		t.Error("full document should keep <html>")
	}
	if !strings.Contains(got, `src="file://`) {
		t.Error("image path should be rewritten")
	}
}

func TestRewriteRelativePathsFragment(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<p>Hello</p><img src="./diagram.png"><p>World</p>`, rewriteBase())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}

	if strings.Contains(got, "<html>") {
		t.Error("fragment should not grow an <html> wrapper")
	}
	if !strings.Contains(got, "<p>Hello</p>") {
		t.Error("fragment content should survive")
	}
	if !strings.Contains(got, `src="file://`) {
		t.Error("image path should be rewritten")
	}
}

func TestRewriteRelativePathsKeepsOtherAttributes(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<img src="./diagram.png" alt="Diagram" class="figure" width="100">`, rewriteBase())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}

	for _, want := range []string{`alt="Diagram"`, `class="figure"`, `width="100"`, `src="file://`} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q should contain %q", got, want)
		}
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"./image.png", true},
		{"images/diagram.png", true},
		{"../parent.png", true},
		{"file.png", true},
		{"sub/dir/file.png", true},
		{"", false},
		{"http://example.com/img.png", false},
		{"https://example.com/img.png", false},
		{"file:///abs/path.png", false},
		{"data:image/png;base64,ABC", false},
		{"//cdn.example.com/img.png", false},
		{"#section-1", false},
		{"/absolute/path.png", false},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		absPath string
		dir     string
		want    bool
	}{
		{"/src/image.png", "/src", true},
		{"/src/images/diagram.png", "/src", true},
		{"/src/image.png", "/src/", true},
		{"/src", "/src", true},
		{"/etc/passwd", "/src", false},
		{"/other/file.png", "/src", false},
		{"/src-other/image.png", "/src", false},
	}

	for _, tt := range tests {
		absPath := filepath.FromSlash(tt.absPath)
		dir := filepath.FromSlash(tt.dir)
		if got := isPathUnderDir(absPath, dir); got != tt.want {
			t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", absPath, dir, got, tt.want)
		}
	}
}

func TestPathToFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expectations use Unix paths")
	}

	tests := []struct {
		absPath string
		want    string
	}{
		{"/src/images/diagram.png", "file:///src/images/diagram.png"},
		{"/src/my images/diagram.png", "file:///src/my%20images/diagram.png"},
		{"/src/日本語/diagram.png", "file:///src/%E6%97%A5%E6%9C%AC%E8%AA%9E/diagram.png"},
	}

	for _, tt := range tests {
		if got := pathToFileURL(tt.absPath); got != tt.want {
			t.Errorf("pathToFileURL(%q) = %q, want %q", tt.absPath, got, tt.want)
		}
	}
}
