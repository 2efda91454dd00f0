package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	src2doc "github.com/alnah/go-src2doc"
)

// doctorResult is the full diagnostic report. The field tags define the
// --json contract; the human printer renders the same data.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Assets   assetsInfo `json:"assets"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// assetsInfo reports which styles and templates are available and whether
// the defaults load.
type assetsInfo struct {
	Styles            []string `json:"styles"`
	Templates         []string `json:"templates"`
	DefaultStyleOK    bool     `json:"default_style_ok"`
	DefaultTemplateOK bool     `json:"default_template_ok"`
}

// chromeInfo reports browser detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo reports platform, container, and CI detection.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo reports host-level checks.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd runs the diagnostic checks and prints the report. Warnings
// leave the exit code at zero; only errors fail the command.
func runDoctorCmd(args []string, env *Environment) int {
	asJSON := false
	for _, arg := range args {
		if arg == "--json" {
			asJSON = true
		}
	}

	report := runDoctor(env)

	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printDoctorResult(env.Stdout, report)
	}

	if report.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor collects every check into one report.
func runDoctor(env *Environment) *doctorResult {
	r := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	r.checkAssets(env.AssetLoader)
	r.checkChrome()
	r.checkEnvironment()
	r.checkSystem()

	switch {
	case len(r.Errors) > 0:
		r.Status = "errors"
	case len(r.Warnings) > 0:
		r.Status = "warnings"
	}
	return r
}

func (r *doctorResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// checkAssets verifies that the default style and template load from the
// configured loader. A broken default makes every generate run fail, so
// these are errors rather than warnings.
func (r *doctorResult) checkAssets(loader src2doc.AssetLoader) {
	r.Assets.Styles = src2doc.AvailableStyles()
	r.Assets.Templates = src2doc.AvailableTemplates()

	if _, err := loader.LoadStyle(src2doc.DefaultStyleName); err != nil {
		r.errorf("Default style %q not loadable: %v", src2doc.DefaultStyleName, err)
	} else {
		r.Assets.DefaultStyleOK = true
	}

	if _, err := loader.LoadTemplate(src2doc.DefaultTemplateName); err != nil {
		r.errorf("Default template %q not loadable: %v", src2doc.DefaultTemplateName, err)
	} else {
		r.Assets.DefaultTemplateOK = true
	}
}

// checkChrome locates the browser and records its version. A missing
// browser is only a warning: HTML generation works without it, PDF export
// does not.
func (r *doctorResult) checkChrome() {
	path := r.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			r.warnf("Chrome/Chromium not found. PDF export unavailable: install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(path); err != nil {
		r.warnf("Chrome not found at %s. PDF export unavailable", path)
		return
	}

	r.Chrome.Found = true
	r.Chrome.Path = path

	if out, err := exec.Command(path, "--version").Output(); err == nil {
		r.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		r.warnf("Could not get Chrome version: %v", err)
	}

	r.Chrome.Sandbox = r.Env.NoSandbox != "1"
}

// ciEnvVars are checked in order; any non-empty one marks the run as CI.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// checkEnvironment records container and CI signals and warns when either
// is present without ROD_NO_SANDBOX, since Chrome's sandbox usually cannot
// start in those environments.
func (r *doctorResult) checkEnvironment() {
	r.Env.Container, r.Env.ContainerHint = isContainer()

	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			r.Env.CI = true
			break
		}
	}

	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.warnf("Container/CI detected but ROD_NO_SANDBOX not set. PDF export may fail; set ROD_NO_SANDBOX=1")
	}
}

// isContainer reports whether the process runs inside a container and which
// signal said so. The explicit SRC2DOC_CONTAINER override wins over probed
// signals.
func isContainer() (bool, string) {
	if os.Getenv("SRC2DOC_CONTAINER") == "1" {
		return true, "SRC2DOC_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" { // podman, systemd-nspawn
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem probes the temp directory, which both atomic writes and the
// PDF exporter rely on.
func (r *doctorResult) checkSystem() {
	tmpDir := os.TempDir()
	probe := filepath.Join(tmpDir, "src2doc-doctor-test")
	if err := os.WriteFile(probe, []byte("test"), 0o600); err != nil {
		r.errorf("Temp directory not writable: %s", tmpDir)
		return
	}
	_ = os.Remove(probe)
	r.System.TempWritable = true
}

// printDoctorResult renders the report for humans, one block per check
// followed by collected warnings and errors.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "src2doc doctor")
	fmt.Fprintln(w)

	printAssetsSection(w, r)
	printChromeSection(w, r)
	printEnvSection(w, r)
	printSystemSection(w, r)
	printIssues(w, r)

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate documentation")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func printAssetsSection(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "Assets")
	fmt.Fprintf(w, "  [OK] Styles: %s\n", strings.Join(r.Assets.Styles, ", "))
	fmt.Fprintf(w, "  [OK] Templates: %s\n", strings.Join(r.Assets.Templates, ", "))
	if r.Assets.DefaultStyleOK {
		fmt.Fprintf(w, "  [OK] Default style: %s\n", src2doc.DefaultStyleName)
	} else {
		fmt.Fprintln(w, "  [ERROR] Default style: not loadable")
	}
	if r.Assets.DefaultTemplateOK {
		fmt.Fprintf(w, "  [OK] Default template: %s\n", src2doc.DefaultTemplateName)
	} else {
		fmt.Fprintln(w, "  [ERROR] Default template: not loadable")
	}
	fmt.Fprintln(w)
}

func printChromeSection(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "Chrome/Chromium")
	if !r.Chrome.Found {
		fmt.Fprintln(w, "  [WARN] Not found (PDF export unavailable)")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
	if r.Chrome.Version != "" {
		fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
	}
	if r.Chrome.Sandbox {
		fmt.Fprintln(w, "  [OK] Sandbox: enabled")
	} else {
		fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
	}
	fmt.Fprintln(w)
}

func printEnvSection(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)
}

func printSystemSection(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)
}

func printIssues(w io.Writer, r *doctorResult) {
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", e)
		}
		fmt.Fprintln(w)
	}
}
