package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-src2doc/internal/yamlutil"
)

// Sentinels callers branch on with errors.Is.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Upper bounds on user-supplied fields. A runaway value fails loudly at
// load time instead of surfacing as a confusing error downstream.
const (
	MaxPathLength    = 2048 // Directory or file path
	MaxNameLength    = 100  // Style or template name
	MaxPatternLength = 100  // Glob pattern like "*.js"
	MaxTimeoutLength = 30   // "30s", "2m30s"
)

// DefaultPattern matches the source files documented when no pattern is
// configured.
const DefaultPattern = "*.js"

// Config holds all configuration for documentation generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	Style    StyleConfig    `yaml:"style"`
	Template TemplateConfig `yaml:"template"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig controls which source files are discovered.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Pattern    string `yaml:"pattern"`    // Glob matched against file names (default: "*.js")
	MaxDepth   int    `yaml:"maxDepth"`   // Directory depth limit, 0 = unlimited
}

// OutputConfig sets where generated pages land.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = alongside source)
}

// RenderConfig toggles the per-block rendering stages.
type RenderConfig struct {
	Markdown  bool `yaml:"markdown"`  // Render prose as markdown (default: true)
	Highlight bool `yaml:"highlight"` // Syntax-highlight code (default: true)
}

// StyleConfig defines page styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name in internal/assets/styles/ or a path to a .css file
}

// TemplateConfig defines page layout options.
type TemplateConfig struct {
	Name string `yaml:"name"` // Template name in internal/assets/templates/
}

// AssetsConfig redirects asset loading away from the embedded set.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines PDF export options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Per-page render timeout, e.g. "30s"
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.pattern", c.Input.Pattern, MaxPatternLength); err != nil {
		return err
	}
	if c.Input.MaxDepth < 0 {
		return fmt.Errorf("input.maxDepth: must be zero or positive, got %d", c.Input.MaxDepth)
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	// Style may name an embedded style or point at a .css file, so it gets
	// the longer path cap.
	if err := validateFieldLength("style.name", c.Style.Name, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("pdf.timeout", c.PDF.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if c.PDF.Timeout != "" {
		if _, err := time.ParseDuration(c.PDF.Timeout); err != nil {
			return fmt.Errorf("pdf.timeout: invalid duration %q", c.PDF.Timeout)
		}
	}

	return nil
}

// validateFieldLength enforces one cap, naming the config key in the error.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is loaded:
// document *.js files with markdown prose and highlighted code.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Pattern: DefaultPattern},
		Render: RenderConfig{Markdown: true, Highlight: true},
	}
}

// LoadConfig reads configuration from a file path or a bare config name.
// Anything containing a separator is a path; a bare name is searched in the
// standard locations. A name that resolves nowhere is an error, never a
// silent fall back to defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Unmarshal over the defaults so a file that omits the render section
	// keeps markdown and highlighting enabled instead of zeroing them.
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath reports whether s names a file rather than a config name. Any
// separator, forward or backward, makes it a path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath finds a config file by bare name, trying .yaml then .yml
// in the working directory and then under the user config directory. The
// error lists every candidate tried so users can see where a file belongs.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var tried []string

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-src2doc", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
