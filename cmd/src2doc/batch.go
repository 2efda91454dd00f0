package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	src2doc "github.com/alnah/go-src2doc"
	"github.com/alnah/go-src2doc/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadSource    = errors.New("failed to read source file")
	ErrWriteDocument = errors.New("failed to write documentation file")
	ErrGeneratorInit = errors.New("failed to initialize generator")
)

// Documenter is the interface for the generation service.
type Documenter interface {
	Generate(ctx context.Context, input src2doc.Input) (*src2doc.Result, error)
}

// Compile-time interface implementation check.
var _ Documenter = (*src2doc.Generator)(nil)

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire() (Documenter, error)
	Release(Documenter)
	Size() int
}

// GenerationResult holds the outcome of a single file.
type GenerationResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// generationParams carries per-run settings that are not generator options.
type generationParams struct {
	title string
}

// generateBatch processes files concurrently using the generator pool.
func generateBatch(ctx context.Context, pool Pool, files []FileToDocument, params *generationParams) []GenerationResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]GenerationResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			doc, err := pool.Acquire()
			if err != nil {
				// Generator creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = GenerationResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %v", ErrGeneratorInit, err),
					}
				}
				return
			}
			defer pool.Release(doc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generateFile(ctx, doc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateFile processes a single file and returns the result.
// Writes are atomic so watchers never observe a half-written page.
func generateFile(ctx context.Context, doc Documenter, f FileToDocument, params *generationParams) GenerationResult {
	start := time.Now()
	result := GenerationResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	genResult, err := doc.Generate(ctx, src2doc.Input{
		Source: string(content),
		Path:   f.InputPath,
		Title:  params.title,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, genResult.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
		result.Duration = time.Since(start)
		return result
	}

	// Write the PDF sibling when the generator produced one (--pdf)
	if len(genResult.PDF) > 0 {
		pdfPath := pdfOutputPath(f.OutputPath)
		if err := fileutil.WriteFileAtomic(pdfPath, genResult.PDF, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs generation results using the environment writers.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
