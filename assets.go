package src2doc

import (
	"fmt"

	"github.com/alnah/go-src2doc/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultStyleName is the name of the built-in CSS style.
	DefaultStyleName = assets.DefaultStyleName

	// DefaultTemplateName is the name of the built-in page template.
	DefaultTemplateName = assets.DefaultTemplateName
)

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implementations may load from filesystem, embedded assets, S3, database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/{name}.css for CSS styles
//   - templates/{name}.html for page templates
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// AvailableStyles lists the built-in style names, sorted.
func AvailableStyles() []string {
	return assets.AvailableStyles()
}

// AvailableTemplates lists the built-in page template names, sorted.
func AvailableTemplates() []string {
	return assets.AvailableTemplates()
}
