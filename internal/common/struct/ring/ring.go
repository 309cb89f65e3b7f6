// Released under an MIT license. See LICENSE.

// Package ring provides the circular buffer that holds ski's reduction window.
//
// Logical position i is stored at physical slot (offset + i) % capacity.
// Ring operations never touch reference counts. Callers retain what they
// store and release what they remove.
package ring

import (
	"strconv"

	"github.com/michaelmacinnis/ski/internal/engine/term"
)

// T (ring) is a growable circular buffer of term handles.
type T struct {
	data   []term.Handle
	offset int
	size   int
}

type ring = T

// New creates a new, empty ring with room for capacity handles.
func New(capacity int) *ring {
	if capacity < 1 {
		capacity = 1
	}

	return &ring{data: make([]term.Handle, capacity)}
}

// Advance removes the first n handles. It returns false, and leaves r
// unchanged, if r holds fewer than n handles.
func (r *ring) Advance(n int) bool {
	if n < 0 || n > r.size {
		return false
	}

	r.offset = (r.offset + n) % len(r.data)
	r.size -= n

	return true
}

// Cap returns the number of handles r can hold without growing.
func (r *ring) Cap() int {
	return len(r.data)
}

// Get returns the handle at logical position i.
func (r *ring) Get(i int) term.Handle {
	return r.data[r.index(i)]
}

// Grow ensures r can hold at least want handles. When it must grow, r at
// least doubles and its contents are moved to the start of the new buffer.
func (r *ring) Grow(want int) {
	if len(r.data) >= want {
		return
	}

	if c := 2 * len(r.data); c > want {
		want = c
	}

	data := make([]term.Handle, want)

	// [ second ... empty ... first ]
	first := len(r.data) - r.offset
	if first > r.size {
		first = r.size
	}

	copy(data, r.data[r.offset:r.offset+first])
	copy(data[first:], r.data[:r.size-first])

	r.data = data
	r.offset = 0
}

// Len returns the number of handles in r.
func (r *ring) Len() int {
	return r.size
}

// Offset returns the physical slot of logical position zero.
func (r *ring) Offset() int {
	return r.offset
}

// Push appends h after the last handle, growing r if it is full.
func (r *ring) Push(h term.Handle) {
	r.Grow(r.size + 1)
	r.size++
	r.Set(r.size-1, h)
}

// Rewind makes room for n more handles in front of the first handle. The
// new positions 0 through n-1 hold stale values until they are Set. It
// returns false, and leaves r unchanged, if r lacks the capacity.
func (r *ring) Rewind(n int) bool {
	if n < 0 || r.size+n > len(r.data) {
		return false
	}

	r.offset = (r.offset - n + len(r.data)) % len(r.data)
	r.size += n

	return true
}

// Set stores h at logical position i.
func (r *ring) Set(i int, h term.Handle) {
	r.data[r.index(i)] = h
}

// Slice returns the handles in r in logical order.
func (r *ring) Slice() []term.Handle {
	s := make([]term.Handle, r.size)
	for i := range s {
		s[i] = r.Get(i)
	}

	return s
}

func (r *ring) index(i int) int {
	if i < 0 || i >= r.size {
		panic("index " + strconv.Itoa(i) + " out of range [0:" + strconv.Itoa(r.size) + "]")
	}

	return (r.offset + i) % len(r.data)
}
