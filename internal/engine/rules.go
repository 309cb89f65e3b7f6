// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/ski/internal/engine/term"
	"github.com/michaelmacinnis/ski/internal/reader/lazy"
)

// I x = x
func (e *engine) i() Status {
	if e.window.Len() < 2 {
		return Stuck
	}

	e.drop(1)

	return Running
}

// K x y = x
func (e *engine) k() Status {
	if e.window.Len() < 3 {
		return Stuck
	}

	e.replace(2, e.window.Get(1))
	e.drop(2)

	return Running
}

// S x y z = x z (y z)
func (e *engine) s() Status {
	if e.window.Len() < 4 {
		return Stuck
	}

	y := e.window.Get(2)
	z := e.window.Get(3)

	e.arena.Retain(y)
	e.arena.Retain(z)

	g := e.arena.Group([]term.Handle{y, z})

	// S x y z -> S x z (y z)
	e.replace(2, z)
	e.replace(3, g)
	e.arena.Release(g)

	e.drop(1)

	return Running
}

// splice replaces the group g at the front of the window with its children.
func (e *engine) splice(g term.Handle) {
	children := e.arena.Children(g)

	n := len(children)
	if n == 0 {
		e.drop(1)
		return
	}

	e.window.Grow(e.window.Len() + n - 1)
	e.window.Rewind(n - 1)

	for i, c := range children {
		e.arena.Retain(c)
		e.window.Set(i, c)
	}

	e.arena.Release(g)
}

// expand parses the deferred text d, at the front of the window, into a group.
func (e *engine) expand(d term.Handle) Status {
	text := e.arena.Text(d)

	if e.trace.Enabled() {
		e.trace.Printf("expanding %q", text)
	}

	g, err := lazy.Expand(e.arena, text)
	if err != nil {
		e.err = err
		e.trace.Printf("%v", err)

		return ParseFailed
	}

	e.window.Set(0, g)
	e.arena.Release(d)

	return Running
}

// replace stores h at position i, taking a new reference to h and
// releasing the term it overwrites.
func (e *engine) replace(i int, h term.Handle) {
	e.arena.Retain(h)
	e.arena.Release(e.window.Get(i))
	e.window.Set(i, h)
}
