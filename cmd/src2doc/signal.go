package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context that is canceled on the first shutdown
// signal. The returned stop func cancels the context and unregisters the
// handler; callers defer it so a later signal falls back to the default
// process behavior.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
