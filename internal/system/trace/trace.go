// Released under an MIT license. See LICENSE.

// Package trace provides ski's diagnostic output.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
)

// T (trace) writes diagnostics when enabled. A nil *T is disabled.
type T struct {
	enabled bool
	out     io.Writer
}

type trace = T

// New creates a new trace writing to stderr.
func New(enabled bool) *trace {
	return To(os.Stderr, enabled)
}

// To creates a new trace writing to w.
func To(w io.Writer, enabled bool) *trace {
	return &trace{enabled: enabled, out: w}
}

// Enabled returns true if t will write anything.
func (t *trace) Enabled() bool {
	return t != nil && t.enabled
}

// Printf writes a formatted trace line.
func (t *trace) Printf(format string, args ...interface{}) {
	if !t.Enabled() {
		return
	}

	fmt.Fprintf(t.out, "[trace] "+format+"\n", args...)
}

// Dump writes a labelled structural dump of v.
func (t *trace) Dump(label string, v interface{}) {
	if !t.Enabled() {
		return
	}

	fmt.Fprintf(t.out, "[dump] %s = %s\n", label, repr.String(v, repr.Indent("  ")))
}
