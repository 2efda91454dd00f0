package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	src2doc "github.com/alnah/go-src2doc"
	"github.com/alnah/go-src2doc/internal/config"
)

// TestExitCodeFor maps every sentinel to its exit code and checks that the
// mapping survives wrapping, since commands always wrap with context.
func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	if got := exitCodeFor(nil); got != ExitSuccess {
		t.Errorf("exitCodeFor(nil) = %d, want %d", got, ExitSuccess)
	}

	render := []error{
		src2doc.ErrBrowserConnect,
		src2doc.ErrPageCreate,
		src2doc.ErrPageLoad,
		src2doc.ErrPDFGeneration,
		src2doc.ErrProseRender,
		src2doc.ErrHighlight,
		src2doc.ErrAssemble,
	}
	ioErrs := []error{
		os.ErrNotExist,
		os.ErrPermission,
		ErrReadSource,
		ErrWriteDocument,
		ErrNoInput,
		ErrNoFilesMatched,
	}
	usage := []error{
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

	check := func(errs []error, want int) {
		t.Helper()
		for _, err := range errs {
			if got := exitCodeFor(err); got != want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, want)
			}
			wrapped := fmt.Errorf("context: %w", err)
			if got := exitCodeFor(wrapped); got != want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", wrapped, got, want)
			}
		}
	}
	check(render, ExitRender)
	check(ioErrs, ExitIO)
	check(usage, ExitUsage)

	unknown := []error{
		errors.New("something unexpected"),
		fmt.Errorf("context: %w", errors.New("unknown")),
	}
	for _, err := range unknown {
		if got := exitCodeFor(err); got != ExitGeneral {
			t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, ExitGeneral)
		}
	}
}

// Exit codes are part of the scripting contract, so the exact values are
// pinned here.
func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		got  int
		want int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitGeneral", ExitGeneral, 1},
		{"ExitUsage", ExitUsage, 2},
		{"ExitIO", ExitIO, 3},
		{"ExitRender", ExitRender, 4},
	} {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
