package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate and watch commands.
type generateFlags struct {
	common      commonFlags
	output      string
	workers     int
	timeout     string
	pattern     string
	maxDepth    int
	title       string
	style       string
	template    string
	assetPath   string
	noStyle     bool
	noMarkdown  bool
	noHighlight bool
	pdf         bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *generateFlags) {
	fs.StringVar(&f.title, "title", "", "page title for every generated page")
	fs.BoolVar(&f.noMarkdown, "no-markdown", false, "pass prose through without markdown rendering")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "escape code instead of highlighting it")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *generateFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or raw CSS")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.pattern, "match", "m", "", `glob matched against file names (default "*.js")`)
	fs.IntVar(&f.maxDepth, "max-depth", 0, "directory depth limit (0 = unlimited)")

	// PDF flags
	fs.BoolVar(&f.pdf, "pdf", false, "also export a PDF next to each page")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF render timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, f)
	addAssetFlags(fs, f)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
