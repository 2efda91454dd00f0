// Package hints suggests fixes for common failures. Every hint renders as
// "\n  hint: <text>" so callers can append it straight onto an error line.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-src2doc/internal/fileutil"
)

// ciEnvVars mark well-known CI systems; any non-empty one counts.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// IsInContainer reports whether the process runs inside Docker or similar,
// via the /.dockerenv file Docker creates. A variable so tests can stub
// the probe.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

func inCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the rod environment variables that unblock
// Chrome startup in containers and CI.
func ForBrowserConnect() string {
	var suggestions []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		suggestions = append(suggestions, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		suggestions = append(suggestions, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	if len(suggestions) == 0 {
		return ""
	}
	return format(strings.Join(suggestions, "; "))
}

// ForTimeout suggests raising the render deadline.
func ForTimeout() string {
	return format("for large pages, use --timeout flag")
}

// ForConfigNotFound suggests the --config flag, plus creating the user
// config when one of the searched paths is under .config/go-src2doc.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-src2doc") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers failures to create the output directory.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	return listAvailable(available)
}

// ForTemplateNotFound lists the templates that do exist.
func ForTemplateNotFound(available []string) string {
	return listAvailable(available)
}

func listAvailable(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return format("available: " + strings.Join(names, ", "))
}

// ForNoFilesMatched covers discovery runs that found nothing to document.
func ForNoFilesMatched(pattern string) string {
	return format("no files matched " + pattern + "; adjust --match or point at a file directly")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
