//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals lists the signals that trigger a graceful stop. SIGTERM
// covers service managers and container runtimes, os.Interrupt covers Ctrl+C.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
