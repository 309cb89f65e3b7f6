// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"io"
)

// Report writes the final state of the engine to w: a notice if the
// reduction is incomplete, the window's glyphs, then the window size and
// the number of terms created.
func (e *engine) Report(w io.Writer) error {
	if e.status.Incomplete() {
		if _, err := fmt.Fprintln(w, "Incomplete parse"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s\n%d %d\n", e.Render(), e.Len(), e.Counter())

	return err
}
