package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/* templates/*
var embedded embed.FS

// EmbeddedLoader serves the styles and templates compiled into the binary.
// The zero value is ready to use.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the CSS for a built-in style name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return loadEmbedded("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate returns the markup for a built-in page template name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return loadEmbedded("templates", name, ".html", ErrTemplateNotFound)
}

// loadEmbedded reads one embedded asset after validating the name.
func loadEmbedded(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := embedded.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
