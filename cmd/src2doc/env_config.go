package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-src2doc/internal/config"
)

// envConfig holds configuration read from SRC2DOC_* environment
// variables, the override layer CI pipelines use instead of a YAML file.
type envConfig struct {
	ConfigPath string        // SRC2DOC_CONFIG: config file path
	Style      string        // SRC2DOC_STYLE: CSS style name or path
	Template   string        // SRC2DOC_TEMPLATE: page template name
	Timeout    time.Duration // SRC2DOC_TIMEOUT: PDF render timeout

	InputDir  string // SRC2DOC_INPUT_DIR: default input directory
	OutputDir string // SRC2DOC_OUTPUT_DIR: default output directory
	Pattern   string // SRC2DOC_PATTERN: source file glob
	AssetPath string // SRC2DOC_ASSET_PATH: custom asset directory
	Workers   int    // SRC2DOC_WORKERS: parallel workers
}

// knownEnvVars is the accepted SRC2DOC_* set, kept for typo warnings.
// SRC2DOC_CONTAINER is read by doctor, not by loadEnvConfig.
var knownEnvVars = map[string]bool{
	"SRC2DOC_CONFIG":     true,
	"SRC2DOC_STYLE":      true,
	"SRC2DOC_TEMPLATE":   true,
	"SRC2DOC_TIMEOUT":    true,
	"SRC2DOC_INPUT_DIR":  true,
	"SRC2DOC_OUTPUT_DIR": true,
	"SRC2DOC_PATTERN":    true,
	"SRC2DOC_ASSET_PATH": true,
	"SRC2DOC_WORKERS":    true,
	"SRC2DOC_CONTAINER":  true,
}

// loadEnvConfig reads every recognized SRC2DOC_* variable. Unparseable
// numeric values are treated as unset; loud validation is the flags' job.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SRC2DOC_CONFIG"),
		Style:      os.Getenv("SRC2DOC_STYLE"),
		Template:   os.Getenv("SRC2DOC_TEMPLATE"),
		InputDir:   os.Getenv("SRC2DOC_INPUT_DIR"),
		OutputDir:  os.Getenv("SRC2DOC_OUTPUT_DIR"),
		Pattern:    os.Getenv("SRC2DOC_PATTERN"),
		AssetPath:  os.Getenv("SRC2DOC_ASSET_PATH"),
	}

	if timeout := os.Getenv("SRC2DOC_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("SRC2DOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SRC2DOC_* variables.
// Helps catch typos like SRC2DOC_STILE instead of SRC2DOC_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SRC2DOC_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values the config file left empty, so an explicit config
// file value beats the environment. CLI flags are applied later via
// mergeFlags and beat both. Timeout is resolved separately in
// resolveTimeoutWithEnv, where the environment does beat the file.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.Template != "" && cfg.Template.Name == "" {
		cfg.Template.Name = env.Template
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	// The pattern default is pre-filled by DefaultConfig, so "still the
	// default" counts as unset here.
	if env.Pattern != "" && (cfg.Input.Pattern == "" || cfg.Input.Pattern == config.DefaultPattern) {
		cfg.Input.Pattern = env.Pattern
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
