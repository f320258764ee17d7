// Package main provides the CLI entrypoint for gluekit.
//
// gluekit exposes the library helpers to shell scripts:
//   - token, uuid: random identifiers
//   - slug, plural, ordinal, csv: text helpers
//   - duration, date, offset: time helpers
//   - get, query, validate: typed access to JSON and YAML documents
package main

import (
	"errors"
	"os"
	_ "time/tzdata"

	"gluekit/apperr"
	"gluekit/internal/logme"
)

// Version information set by ldflags.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUserError = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	logme.Errorln(err)

	return exitCode(err)
}

// exitCode distinguishes bad input from internal failures.
func exitCode(err error) int {
	var appErr *apperr.Error
	if errors.As(err, &appErr) || errors.Is(err, errUsage) {
		return exitUserError
	}

	return exitFailure
}
