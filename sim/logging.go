package sim

import (
	"fmt"
	"io"
	"os"
)

// logWriter is the destination for diagnostic output. Grounded on
// game/logging.go's package-level Logf/SetLogWriter shape.
var logWriter io.Writer = os.Stdout

// SetLogWriter redirects diagnostic output. Passing nil restores stdout.
func SetLogWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	logWriter = w
}

func logf(format string, args ...interface{}) {
	fmt.Fprintf(logWriter, format+"\n", args...)
}

// warnOnce logs a diagnostic message at most once per kind per Init
// (World.Init clears the set of kinds already logged),
// per spec.md §7 ("Logged at most once per kind per initialization").
func (w *World) warnOnce(kind, format string, args ...interface{}) {
	if w.warned == nil {
		w.warned = make(map[string]bool)
	}
	if w.warned[kind] {
		return
	}
	w.warned[kind] = true
	logf("[world] "+format, args...)
}
