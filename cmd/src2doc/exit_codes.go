package main

import (
	"errors"
	"os"

	src2doc "github.com/alnah/go-src2doc"
	"github.com/alnah/go-src2doc/internal/config"
)

// Exit codes for the src2doc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Rendering or browser errors
)

// Sentinels grouped by the exit code they map to. Order matters only in
// that an error wrapping sentinels from two groups takes the first match.
var (
	renderErrors = []error{
		src2doc.ErrBrowserConnect,
		src2doc.ErrPageCreate,
		src2doc.ErrPageLoad,
		src2doc.ErrPDFGeneration,
		src2doc.ErrProseRender,
		src2doc.ErrHighlight,
		src2doc.ErrAssemble,
	}
	ioErrors = []error{
		os.ErrNotExist,
		os.ErrPermission,
		ErrReadSource,
		ErrWriteDocument,
		ErrNoInput,
		ErrNoFilesMatched,
	}
	usageErrors = []error{
		config.ErrConfigNotFound,
		config.ErrConfigParse,
		config.ErrEmptyConfigName,
		config.ErrFieldTooLong,
		src2doc.ErrMissingPath,
		src2doc.ErrStyleNotFound,
		src2doc.ErrTemplateNotFound,
		src2doc.ErrInvalidAssetPath,
		src2doc.ErrTemplateParse,
		ErrInvalidWorkerCount,
		ErrInvalidPattern,
	}
)

// exitCodeFor maps an error to the process exit code. Matching goes
// through errors.Is, so commands must wrap causes with %w.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case matchesAny(err, renderErrors):
		return ExitRender
	case matchesAny(err, ioErrors):
		return ExitIO
	case matchesAny(err, usageErrors):
		return ExitUsage
	}
	return ExitGeneral
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
