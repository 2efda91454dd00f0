package main

import (
	"io"
	"os"

	src2doc "github.com/alnah/go-src2doc"
)

// Environment carries the process-level dependencies commands write
// through. Tests swap in buffers and their own loader.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader src2doc.AssetLoader
}

// DefaultEnv wires the real streams and the embedded asset set.
func DefaultEnv() *Environment {
	// The embedded-only loader cannot fail, so the error is ignored.
	loader, _ := src2doc.NewAssetLoader("")
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: loader,
	}
}
