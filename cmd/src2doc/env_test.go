package main

import (
	"fmt"
	"os"
	"testing"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	if env.Stdout != os.Stdout {
		t.Error("Stdout should default to os.Stdout")
	}
	if env.Stderr != os.Stderr {
		t.Error("Stderr should default to os.Stderr")
	}
	if env.AssetLoader == nil {
		t.Fatal("AssetLoader should be wired")
	}
	if _, err := env.AssetLoader.LoadStyle("classic"); err != nil {
		t.Errorf("default loader should serve the built-ins: %v", err)
	}
}

// Commands write through the Environment, never to os.Stdout directly, so a
// buffer-backed Environment must capture everything.
func TestEnvironmentCapture(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := newTestEnv()

	fmt.Fprint(env.Stdout, "to stdout")
	fmt.Fprint(env.Stderr, "to stderr")

	if stdout.String() != "to stdout" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "to stdout")
	}
	if stderr.String() != "to stderr" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "to stderr")
	}
}
