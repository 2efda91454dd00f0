package main

// Actual OS signal delivery is not exercised here; it is non-deterministic
// and needs platform setup. The tests cover the context plumbing that
// generate and watch depend on: creation, stop, and parent propagation.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts live", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx == nil {
			t.Fatal("expected a context")
		}
		if err := ctx.Err(); err != nil {
			t.Fatalf("context canceled before any signal: %v", err)
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if ctx.Err() == nil {
			t.Fatal("expected cancellation after stop")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		if ctx.Err() == nil {
			t.Fatal("expected cancellation to propagate from parent")
		}
	})
}
