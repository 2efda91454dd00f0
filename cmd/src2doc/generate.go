package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	src2doc "github.com/alnah/go-src2doc"
	"github.com/alnah/go-src2doc/internal/config"
	"github.com/alnah/go-src2doc/internal/hints"
)

// generatePlan holds everything a generation run needs: the discovered
// files, the generator options, and the resolved input settings.
type generatePlan struct {
	files     []FileToDocument
	options   []src2doc.Option
	params    *generationParams
	workers   int
	inputPath string
	outputDir string
	pattern   string
	maxDepth  int
}

// runGenerateCmd handles the generate command.
func runGenerateCmd(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)
	configureMaxProcs(flags.common.verbose, env.Stderr)

	plan, err := buildGeneratePlan(positional, flags, env)
	if err != nil {
		printErrorWithHint(env.Stderr, err)
		return exitCodeFor(err)
	}

	poolSize := src2doc.ResolvePoolSize(plan.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	adapter := &poolAdapter{pool: src2doc.NewGeneratorPool(poolSize, plan.options...)}
	defer adapter.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, adapter, plan, flags.common, env); err != nil {
		printErrorWithHint(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate executes the plan and reports results.
func runGenerate(ctx context.Context, pool Pool, plan *generatePlan, common commonFlags, env *Environment) error {
	results := generateBatch(ctx, pool, plan.files, plan.params)
	if failed := printResults(results, common.quiet, common.verbose, env); failed > 0 {
		return fmt.Errorf("%d generation(s) failed", failed)
	}
	return nil
}

// buildGeneratePlan resolves flags, environment, and config into a plan.
// Precedence: CLI flags > environment > config file > defaults.
func buildGeneratePlan(positional []string, flags *generateFlags, env *Environment) (*generatePlan, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	envCfg := loadEnvConfig()

	cfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := validatePattern(cfg.Input.Pattern); err != nil {
		return nil, err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return nil, err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir, cfg.Input.Pattern, cfg.Input.MaxDepth)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s%s", ErrNoFilesMatched, inputPath, hints.ForNoFilesMatched(cfg.Input.Pattern))
	}

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.PDF.Timeout)
	if err != nil {
		return nil, err
	}

	workers := flags.workers
	if workers == 0 && envCfg.Workers > 0 {
		workers = envCfg.Workers
	}

	return &generatePlan{
		files:     files,
		options:   buildOptions(cfg, flags.noStyle, timeout),
		params:    &generationParams{title: flags.title},
		workers:   workers,
		inputPath: inputPath,
		outputDir: outputDir,
		pattern:   cfg.Input.Pattern,
		maxDepth:  cfg.Input.MaxDepth,
	}, nil
}

// mergeFlags applies CLI flag values onto the config.
// CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.pattern != "" {
		cfg.Input.Pattern = flags.pattern
	}
	if flags.maxDepth > 0 {
		cfg.Input.MaxDepth = flags.maxDepth
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.template != "" {
		cfg.Template.Name = flags.template
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.noMarkdown {
		cfg.Render.Markdown = false
	}
	if flags.noHighlight {
		cfg.Render.Highlight = false
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
}

// resolveInputPath picks the input from positional args or config.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: provide an input path or set input.defaultDir in config", ErrNoInput)
}

// resolveOutputDir picks the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildOptions translates resolved config into generator options.
func buildOptions(cfg *config.Config, noStyle bool, timeout time.Duration) []src2doc.Option {
	var opts []src2doc.Option

	if !cfg.Render.Markdown {
		opts = append(opts, src2doc.WithMarkdown(false))
	}
	if !cfg.Render.Highlight {
		opts = append(opts, src2doc.WithHighlighting(false))
	}

	switch {
	case noStyle:
		opts = append(opts, src2doc.WithoutStyle())
	case cfg.Style.Name != "":
		opts = append(opts, src2doc.WithStyle(cfg.Style.Name))
	}

	if cfg.Template.Name != "" {
		opts = append(opts, src2doc.WithTemplate(cfg.Template.Name))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, src2doc.WithAssetPath(cfg.Assets.BasePath))
	}

	if cfg.PDF.Enabled {
		opts = append(opts, src2doc.WithPDF())
	}
	if timeout > 0 {
		opts = append(opts, src2doc.WithTimeout(timeout))
	}

	return opts
}

// resolveTimeoutWithEnv resolves the PDF timeout.
// Priority: CLI flag > environment > config file. Zero means default.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %v", flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %q", flagValue)
		}
		return d, nil
	}

	if envValue > 0 {
		return envValue, nil
	}

	if configValue != "" {
		d, err := time.ParseDuration(configValue)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %v", configValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %q", configValue)
		}
		return d, nil
	}

	return 0, nil
}
