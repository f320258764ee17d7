// Package logme is the command-line logger. Debug output is enabled by
// DEBUG=1 in the environment or by SetDebug.
package logme

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var (
	debugMode atomic.Bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	debugMode.Store(os.Getenv("DEBUG") == "1")
}

// SetDebug turns debug output on or off.
func SetDebug(on bool) {
	debugMode.Store(on)
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// SetOutput redirects standard and error output. Used by tests.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func DebugF(msg string, args ...interface{}) {
	if IsDebug() {
		fmt.Fprint(stderr, "[DEBUG] ")
		fmt.Fprintf(stderr, msg, args...)
	}
}

func Debugln(args ...interface{}) {
	if IsDebug() {
		fmt.Fprint(stderr, "[DEBUG] ")
		fmt.Fprintln(stderr, args...)
	}
}

// Dump writes a deep rendering of v when debug output is enabled.
func Dump(label string, v interface{}) {
	if IsDebug() {
		fmt.Fprintf(stderr, "[DEBUG] %s:\n%s", label, spew.Sdump(v))
	}
}

func InfoF(msg string, args ...interface{}) {
	fmt.Fprintf(stdout, msg, args...)
}

func Infoln(arg ...interface{}) {
	fmt.Fprintln(stdout, arg...)
}

// ErrorF writes a red "error: " prefix followed by the message.
func ErrorF(msg string, args ...interface{}) {
	fmt.Fprint(stderr, color.RedString("error: "))
	fmt.Fprintf(stderr, msg, args...)
}

func Errorln(arg ...interface{}) {
	fmt.Fprint(stderr, color.RedString("error: "))
	fmt.Fprintln(stderr, arg...)
}

// Warnln writes a yellow "warning: " prefix followed by the message.
func Warnln(arg ...interface{}) {
	fmt.Fprint(stderr, color.YellowString("warning: "))
	fmt.Fprintln(stderr, arg...)
}
