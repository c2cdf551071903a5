package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool
	output  io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via the TODO_DEBUG
// environment variable or the --verbose flag
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TODO_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of TODO_DEBUG
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// SetOutput redirects debug output. Stdout is reserved for command results,
// so the default is stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, "debug: "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, append([]interface{}{"debug:"}, args...)...)
	}
}
