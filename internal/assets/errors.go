package assets

import "errors"

// Sentinel errors, matched by callers with errors.Is.
var (
	// ErrStyleNotFound reports an unknown style name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrTemplateNotFound reports an unknown template name.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName reports a name that failed validation, such as
	// one carrying separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath reports a custom asset path that is not a
	// readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead reports an I/O failure on an asset that does exist.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal reports a resolved path that escaped the base
	// directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
