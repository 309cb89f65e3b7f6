// Released under an MIT license. See LICENSE.

// Package vec provides the scratch sequence used while assembling a group.
package vec

import (
	"github.com/michaelmacinnis/ski/internal/engine/term"
)

const minimum = 10

// T (vec) is an append-only sequence of owned term handles.
type T struct {
	items []term.Handle
}

type vec = T

// New creates a new, empty vec.
func New() *vec {
	return &vec{}
}

// Append adds h to the end of v. The reference held by the caller moves to v.
func (v *vec) Append(h term.Handle) {
	n := len(v.items)
	if n+1 > cap(v.items) {
		c := 2 * cap(v.items)
		if n < minimum/2 {
			c = minimum
		}

		items := make([]term.Handle, n, c)
		copy(items, v.items)
		v.items = items
	}

	v.items = append(v.items, h)
}

// At returns the handle at index i.
func (v *vec) At(i int) term.Handle {
	return v.items[i]
}

// Cap returns the number of handles v can hold before it grows.
func (v *vec) Cap() int {
	return cap(v.items)
}

// Len returns the number of handles in v.
func (v *vec) Len() int {
	return len(v.items)
}

// Items returns the handles in v. References move with them; v should not
// be used afterwards.
func (v *vec) Items() []term.Handle {
	items := v.items
	v.items = nil

	return items
}

// Release gives up every reference still held by v.
func (v *vec) Release(a *term.Arena) {
	for _, h := range v.items {
		a.Release(h)
	}

	v.items = nil
}
