//go:build windows

package main

import "os"

// shutdownSignals on Windows is os.Interrupt alone; there is no SIGTERM,
// and Ctrl+C (and Ctrl+Break) arrive as interrupts.
var shutdownSignals = []os.Signal{os.Interrupt}
