package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	src2doc "github.com/alnah/go-src2doc"
	"github.com/alnah/go-src2doc/internal/config"
	"github.com/alnah/go-src2doc/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch cmd {
	case "generate":
		return runGenerateCmd(rest, env)
	case "watch":
		return runWatchCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-src2doc %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(rest, env)
		return ExitSuccess
	}

	// Direct invocation: src2doc cake.js behaves like src2doc generate cake.js.
	if looksLikeSourcePath(cmd) {
		return runGenerateCmd(args[1:], env)
	}

	suggestion := ""
	if isCommand(strings.ToLower(cmd)) {
		suggestion = fmt.Sprintf(" (did you mean %q?)", strings.ToLower(cmd))
	}
	fmt.Fprintf(env.Stderr, "unknown command: %s%s\n", cmd, suggestion)
	printUsage(env.Stderr)
	return ExitUsage
}

// commands lists the recognized subcommands.
var commands = map[string]bool{
	"generate": true,
	"watch":    true,
	"doctor":   true,
	"version":  true,
	"help":     true,
}

// isCommand reports whether s names a subcommand. Case sensitive.
func isCommand(s string) bool {
	return commands[s]
}

// looksLikeSourcePath reports whether the first argument names a file or
// directory rather than a command. Anything with a path separator or an
// extension qualifies, so "src2doc cake.js" and "src2doc ./src" work without
// the generate keyword.
func looksLikeSourcePath(s string) bool {
	if s == "" || strings.HasPrefix(s, "-") {
		return false
	}
	return strings.ContainsAny(s, "/\\.")
}

// configureMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, stderr io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}

// printErrorWithHint writes the error with an actionable hint when one is
// known for the failure.
func printErrorWithHint(w io.Writer, err error) {
	var hint string
	switch {
	case errors.Is(err, src2doc.ErrBrowserConnect):
		hint = hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(nil)
	case errors.Is(err, src2doc.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(src2doc.AvailableStyles())
	case errors.Is(err, src2doc.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound(src2doc.AvailableTemplates())
	case errors.Is(err, ErrWriteDocument):
		hint = hints.ForOutputDirectory()
	}
	fmt.Fprintf(w, "Error: %v%s\n", err, hint)
}
