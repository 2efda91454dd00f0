package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	flag "github.com/spf13/pflag"

	src2doc "github.com/alnah/go-src2doc"
)

// watchDebounce groups the event bursts editors produce for a single save.
const watchDebounce = 100 * time.Millisecond

// runWatchCmd handles the watch command.
func runWatchCmd(args []string, env *Environment) int {
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

	if err := runWatch(ctx, adapter, plan, flags.common, env); err != nil {
		printErrorWithHint(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runWatch generates once, then regenerates changed files until ctx ends.
// Per-file failures are reported but do not stop the watch.
func runWatch(ctx context.Context, pool Pool, plan *generatePlan, common commonFlags, env *Environment) error {
	results := generateBatch(ctx, pool, plan.files, plan.params)
	printResults(results, common.quiet, common.verbose, env)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := collectWatchDirs(plan.inputPath, plan.maxDepth)
	if err != nil {
		return fmt.Errorf("collecting watch directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(env.Stderr, "warning: failed to watch %s: %v\n", dir, err)
		}
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", plan.inputPath)
	}

	session := newWatchSession(pool, plan, common, env)
	defer session.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			session.handleEvent(ctx, event, watcher)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)
		}
	}
}

// watchSession debounces file events and regenerates the affected files.
type watchSession struct {
	pool   Pool
	plan   *generatePlan
	common commonFlags
	env    *Environment

	// sourceDir is true when the input is a directory rather than a file.
	sourceDir bool

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

func newWatchSession(pool Pool, plan *generatePlan, common commonFlags, env *Environment) *watchSession {
	info, err := os.Stat(plan.inputPath)
	return &watchSession{
		pool:      pool,
		plan:      plan,
		common:    common,
		env:       env,
		sourceDir: err == nil && info.IsDir(),
		pending:   make(map[string]struct{}),
	}
}

// handleEvent filters an event and schedules a debounced regeneration.
func (s *watchSession) handleEvent(ctx context.Context, event fsnotify.Event, watcher *fsnotify.Watcher) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// New subdirectory: start watching it when depth allows.
			if s.dirWithinDepth(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					fmt.Fprintf(s.env.Stderr, "warning: failed to watch %s: %v\n", event.Name, err)
				}
			}
			return
		}
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		// A removed source has nothing to document.
		// A replacement shows up as a Create or Write event.
		return
	}

	if !s.wantsPath(event.Name) {
		return
	}

	s.mu.Lock()
	s.pending[event.Name] = struct{}{}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(watchDebounce, func() { s.flush(ctx) })
	s.mu.Unlock()
}

// stop cancels any pending debounce timer.
func (s *watchSession) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}

// dirWithinDepth reports whether files inside dir can still match maxDepth.
func (s *watchSession) dirWithinDepth(dir string) bool {
	if s.plan.maxDepth <= 0 {
		return true
	}
	rel, err := filepath.Rel(s.plan.inputPath, dir)
	if err != nil {
		return false
	}
	return depthOf(rel)+1 <= s.plan.maxDepth
}

// wantsPath reports whether a changed path should be regenerated.
func (s *watchSession) wantsPath(path string) bool {
	if !s.sourceDir {
		return filepath.Clean(path) == filepath.Clean(s.plan.inputPath)
	}

	rel, err := filepath.Rel(s.plan.inputPath, path)
	if err != nil {
		return false
	}
	if s.plan.maxDepth > 0 && depthOf(rel) > s.plan.maxDepth {
		return false
	}
	matched, err := filepath.Match(s.plan.pattern, filepath.Base(path))
	return err == nil && matched
}

// flush regenerates every pending file in one batch.
func (s *watchSession) flush(ctx context.Context) {
	s.mu.Lock()
	paths := make([]string, 0, len(s.pending))
	for p := range s.pending {
		paths = append(paths, p)
	}
	s.pending = make(map[string]struct{})
	s.mu.Unlock()

	if len(paths) == 0 || ctx.Err() != nil {
		return
	}
	sort.Strings(paths)

	files := make([]FileToDocument, 0, len(paths))
	for _, p := range paths {
		base := ""
		if s.sourceDir {
			base = s.plan.inputPath
		}
		files = append(files, FileToDocument{
			InputPath:  p,
			OutputPath: resolveOutputPath(p, s.plan.outputDir, base),
		})
	}

	results := generateBatch(ctx, s.pool, files, s.plan.params)
	printResults(results, s.common.quiet, s.common.verbose, s.env)
}

// collectWatchDirs lists the directories to register with the watcher.
func collectWatchDirs(inputPath string, maxDepth int) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		// The parent is watched so atomic saves (write then rename) are observed.
		return []string{filepath.Dir(inputPath)}, nil
	}

	var dirs []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(inputPath, path)
		if relErr != nil {
			return fmt.Errorf("scanning %s: %w", path, relErr)
		}
		if maxDepth > 0 && depthOf(rel)+1 > maxDepth {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}
