package assets

import "errors"

// AssetResolver serves assets from a custom directory when one is
// configured, falling back to the embedded set for names the directory
// does not provide. Without a custom path it is a plain embedded loader.
type AssetResolver struct {
	custom   AssetLoader // nil when no custom path is configured
	embedded AssetLoader
}

// NewAssetResolver builds a resolver. An empty customBasePath means
// embedded-only; a non-empty one must name a readable directory.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// LoadStyle returns the named CSS, custom copy first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.resolve(AssetLoader.LoadStyle, name)
}

// LoadTemplate returns the named template markup, custom copy first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.resolve(AssetLoader.LoadTemplate, name)
}

// resolve tries the custom loader and falls back to embedded only on
// not-found. Validation and I/O failures surface as-is so a broken custom
// asset is reported instead of silently masked by the embedded copy.
func (r *AssetResolver) resolve(load func(AssetLoader, string) (string, error), name string) (string, error) {
	if r.custom == nil {
		return load(r.embedded, name)
	}

	content, err := load(r.custom, name)
	switch {
	case err == nil:
		return content, nil
	case isNotFoundError(err):
		return load(r.embedded, name)
	default:
		return "", err
	}
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
