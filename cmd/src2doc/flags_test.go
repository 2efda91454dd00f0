package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		args            []string
		wantConfig      string
		wantOutput      string
		wantWorkers     int
		wantTimeout     string
		wantPattern     string
		wantMaxDepth    int
		wantTitle       string
		wantStyle       string
		wantTemplate    string
		wantAssetPath   string
		wantNoStyle     bool
		wantNoMarkdown  bool
		wantNoHighlight bool
		wantPDF         bool
		wantQuiet       bool
		wantVerbose     bool
		wantPositional  []string
		wantErr         bool
	}{
		{
			name:           "no args",
			args:           []string{},
			wantPositional: []string{},
		},
		{
			name:           "single file",
			args:           []string{"cake.js"},
			wantPositional: []string{"cake.js"},
		},
		{
			name:           "config flag",
			args:           []string{"--config", "work"},
			wantConfig:     "work",
			wantPositional: []string{},
		},
		{
			name:           "output flag short",
			args:           []string{"-o", "./out/"},
			wantOutput:     "./out/",
			wantPositional: []string{},
		},
		{
			name:           "workers flag short",
			args:           []string{"-w", "4"},
			wantWorkers:    4,
			wantPositional: []string{},
		},
		{
			name:           "timeout flag short",
			args:           []string{"-t", "45s"},
			wantTimeout:    "45s",
			wantPositional: []string{},
		},
		{
			name:           "match flag short",
			args:           []string{"-m", "*.py"},
			wantPattern:    "*.py",
			wantPositional: []string{},
		},
		{
			name:           "max-depth flag",
			args:           []string{"--max-depth", "2"},
			wantMaxDepth:   2,
			wantPositional: []string{},
		},
		{
			name:           "title flag",
			args:           []string{"--title", "Recipes"},
			wantTitle:      "Recipes",
			wantPositional: []string{},
		},
		{
			name:           "style flag",
			args:           []string{"--style", "plain"},
			wantStyle:      "plain",
			wantPositional: []string{},
		},
		{
			name:           "template flag",
			args:           []string{"--template", "linear"},
			wantTemplate:   "linear",
			wantPositional: []string{},
		},
		{
			name:           "asset-path flag",
			args:           []string{"--asset-path", "./assets"},
			wantAssetPath:  "./assets",
			wantPositional: []string{},
		},
		{
			name:           "no-style flag",
			args:           []string{"--no-style", "cake.js"},
			wantNoStyle:    true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:           "no-markdown flag",
			args:           []string{"--no-markdown", "cake.js"},
			wantNoMarkdown: true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:            "no-highlight flag",
			args:            []string{"--no-highlight", "cake.js"},
			wantNoHighlight: true,
			wantPositional:  []string{"cake.js"},
		},
		{
			name:           "pdf flag",
			args:           []string{"--pdf", "cake.js"},
			wantPDF:        true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:           "quiet and verbose short flags",
			args:           []string{"-q", "-v", "cake.js"},
			wantQuiet:      true,
			wantVerbose:    true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:           "flags after positional argument",
			args:           []string{"cake.js", "-o", "./out/", "--verbose"},
			wantOutput:     "./out/",
			wantVerbose:    true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:           "mixed long and short flags",
			args:           []string{"--config", "work", "-o", "./out/", "cake.js", "-v"},
			wantConfig:     "work",
			wantOutput:     "./out/",
			wantVerbose:    true,
			wantPositional: []string{"cake.js"},
		},
		{
			name:    "unknown flag returns error",
			args:    []string{"--unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseGenerateFlags(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if flags.common.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", flags.common.config, tt.wantConfig)
			}
			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", flags.workers, tt.wantWorkers)
			}
			if flags.timeout != tt.wantTimeout {
				t.Errorf("timeout = %q, want %q", flags.timeout, tt.wantTimeout)
			}
			if flags.pattern != tt.wantPattern {
				t.Errorf("pattern = %q, want %q", flags.pattern, tt.wantPattern)
			}
			if flags.maxDepth != tt.wantMaxDepth {
				t.Errorf("maxDepth = %d, want %d", flags.maxDepth, tt.wantMaxDepth)
			}
			if flags.title != tt.wantTitle {
				t.Errorf("title = %q, want %q", flags.title, tt.wantTitle)
			}
			if flags.style != tt.wantStyle {
				t.Errorf("style = %q, want %q", flags.style, tt.wantStyle)
			}
			if flags.template != tt.wantTemplate {
				t.Errorf("template = %q, want %q", flags.template, tt.wantTemplate)
			}
			if flags.assetPath != tt.wantAssetPath {
				t.Errorf("assetPath = %q, want %q", flags.assetPath, tt.wantAssetPath)
			}
			if flags.noStyle != tt.wantNoStyle {
				t.Errorf("noStyle = %v, want %v", flags.noStyle, tt.wantNoStyle)
			}
			if flags.noMarkdown != tt.wantNoMarkdown {
				t.Errorf("noMarkdown = %v, want %v", flags.noMarkdown, tt.wantNoMarkdown)
			}
			if flags.noHighlight != tt.wantNoHighlight {
				t.Errorf("noHighlight = %v, want %v", flags.noHighlight, tt.wantNoHighlight)
			}
			if flags.pdf != tt.wantPDF {
				t.Errorf("pdf = %v, want %v", flags.pdf, tt.wantPDF)
			}
			if flags.common.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.common.quiet, tt.wantQuiet)
			}
			if flags.common.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.common.verbose, tt.wantVerbose)
			}
			if len(positional) != len(tt.wantPositional) {
				t.Errorf("positional args = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}

func TestParseGenerateFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, err := parseGenerateFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}
