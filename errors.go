package src2doc

import (
	"errors"

	"github.com/alnah/go-src2doc/internal/assets"
	"github.com/alnah/go-src2doc/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrMissingPath    = errors.New("input path cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors. The lookup errors are shared with the internal
	// loaders so errors.Is matches what NewGenerator returns.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound

	// Rendering errors, shared with the internal pipeline for the same reason.
	ErrProseRender   = pipeline.ErrProseRender
	ErrHighlight     = pipeline.ErrHighlight
	ErrTemplateParse = pipeline.ErrTemplateParse
	ErrAssemble      = pipeline.ErrAssemble
)
