package assets

// AssetLoader loads CSS styles and page templates by bare name. The loader
// owns the extension and location; callers never pass paths.
//
// Implementations load from the embedded defaults, from a directory on
// disk, or from both with fallback (see AssetResolver).
type AssetLoader interface {
	// LoadStyle returns the CSS for a style name. Fails with
	// ErrStyleNotFound for unknown names and ErrInvalidAssetName for
	// names that do not validate.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the markup for a template name. Fails with
	// ErrTemplateNotFound and ErrInvalidAssetName likewise.
	LoadTemplate(name string) (string, error)
}
