package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	src2doc "github.com/alnah/go-src2doc"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidPattern     = errors.New("invalid file pattern")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoFilesMatched     = errors.New("no source files matched")
)

// FileToDocument represents a single file to process.
type FileToDocument struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all source files to document. A single file is
// taken as-is; a directory is walked and filtered by pattern and depth.
func discoverFiles(inputPath, outputDir, pattern string, maxDepth int) ([]FileToDocument, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToDocument{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToDocument
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		rel, relErr := filepath.Rel(inputPath, path)
		if relErr != nil {
			return fmt.Errorf("scanning %s: %w", path, relErr)
		}
		if d.IsDir() {
			if maxDepth > 0 && depthOf(rel)+1 > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if maxDepth > 0 && depthOf(rel) > maxDepth {
			return nil
		}
		matched, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		if !matched {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToDocument{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// depthOf reports how many path segments deep rel is.
// "." is the walk root at depth 0; "cake.js" is 1; "sub/cake.js" is 2.
func depthOf(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// resolveOutputPath determines the HTML output path for a source file.
// The full source name is kept so cake.js and cake.css never collide.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return inputPath + ".html"
	}

	if strings.HasSuffix(outputDir, ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, relPath+".html")
		}
	}

	return filepath.Join(outputDir, filepath.Base(inputPath)+".html")
}

// pdfOutputPath returns the PDF path corresponding to an HTML path.
func pdfOutputPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, ".html") + ".pdf"
}

// validatePattern checks that the glob pattern is well-formed.
func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > src2doc.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, src2doc.MaxPoolSize)
	}
	return nil
}
