package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewritableAttr maps elements whose path attribute gets rewritten for PDF
// export. Script sources stay untouched for safety; media elements and
// srcset stay untouched because print output cannot use them.
var rewritableAttr = map[string]string{
	"img": "src",
	"a":   "href",
}

// RewriteRelativePaths converts relative img[src] and a[href] values into
// absolute file:// URLs resolved against sourceDir. Pages are loaded from a
// temporary file during PDF export, which breaks links relative to the
// original source location; rewriting restores them. Absolute paths, URLs,
// anchors, and paths escaping sourceDir are left unchanged. An empty
// sourceDir disables rewriting.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteTree(doc, absSourceDir)

	return renderHTML(doc, isFragment)
}

// parseHTML parses either a full document or a bare fragment, reporting
// which it saw so renderHTML can mirror the choice.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context so the result is not wrapped in a
	// synthetic <html><body> shell.
	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to a string. Fragments render child
// by child to avoid growing a wrapper element.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteTree walks the DOM and rewrites relative paths on known elements.
func rewriteTree(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		if attrName, ok := rewritableAttr[n.Data]; ok {
			rewriteAttr(n, attrName, sourceDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteTree(c, sourceDir)
	}
}

// rewriteAttr rewrites a single attribute if it holds a relative path that
// stays inside sourceDir.
func rewriteAttr(n *html.Node, attrName, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		if !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, attr.Val)

		// Traversal outside the source tree keeps the original value.
		if !isPathUnderDir(absPath, sourceDir) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// skipPrefixes mark attribute values that are already resolved or are not
// file paths at all: URLs, data URIs, protocol-relative references, and the
// in-page section anchors every generated page carries.
var skipPrefixes = []string{"http://", "https://", "file://", "data:", "//", "#"}

// isRelativePath reports whether the value should be rewritten.
func isRelativePath(path string) bool {
	if path == "" || filepath.IsAbs(path) {
		return false
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// isPathUnderDir reports whether absPath stays inside dir.
func isPathUnderDir(absPath, dir string) bool {
	sep := string(filepath.Separator)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, sep) {
		cleanDir += sep
	}
	return strings.HasPrefix(filepath.Clean(absPath)+sep, cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL. filepath.ToSlash
// keeps Windows drive paths valid.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
