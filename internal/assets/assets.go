package assets

import (
	"sort"
	"strings"
)

// Built-in asset names.
const (
	// DefaultStyleName is the name of the built-in CSS style.
	DefaultStyleName = "classic"

	// DefaultTemplateName is the name of the built-in page template.
	DefaultTemplateName = "default"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS style by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a page template by name using the default embedded loader.
// The name should not include the .html extension or path components.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// AvailableStyles lists the embedded style names, sorted, without extension.
func AvailableStyles() []string {
	return listEmbedded("styles", ".css")
}

// AvailableTemplates lists the embedded template names, sorted, without extension.
func AvailableTemplates() []string {
	return listEmbedded("templates", ".html")
}

func listEmbedded(dir, ext string) []string {
	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names
}
