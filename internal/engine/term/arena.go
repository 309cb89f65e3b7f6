// Released under an MIT license. See LICENSE.

package term

import (
	"strconv"

	"github.com/michaelmacinnis/ski/internal/engine/primitive"
)

// Arena owns every term created by an engine.
type Arena struct {
	counter uint64   // Last id issued.
	free    []Handle // Reclaimed slots.
	live    int      // Slots with a positive reference count.
	slots   []term   // Slot 0 is never used.
	pending []Handle // Release worklist.
}

// NewArena creates a new, empty Arena.
func NewArena() *Arena {
	return &Arena{slots: make([]term, 1, 64)}
}

// Combinator creates a new S, K or I term.
func (a *Arena) Combinator(k Kind) Handle {
	if !k.Combinator() {
		panic(k.String() + " is not a combinator")
	}

	return a.create(term{kind: k})
}

// Group creates a new group term. The group takes ownership of the
// references held in children.
func (a *Arena) Group(children []Handle) Handle {
	owned := make([]Handle, len(children))
	copy(owned, children)

	return a.create(term{kind: Group, children: owned})
}

// Deferred creates a new term holding a copy of the unparsed text.
func (a *Arena) Deferred(text []byte) Handle {
	owned := make([]byte, len(text))
	copy(owned, text)

	return a.create(term{kind: Deferred, text: owned})
}

// Primitive creates a new term for the built-in operation o.
func (a *Arena) Primitive(o primitive.Op) Handle {
	return a.create(term{kind: Primitive, op: o})
}

// Literal creates a new term holding the value v.
func (a *Arena) Literal(v primitive.Value) Handle {
	return a.create(term{kind: Literal, value: v})
}

// Retain adds a reference to the term h.
func (a *Arena) Retain(h Handle) {
	a.alive(h).refs++
}

// Release drops a reference to the term h. Releasing Nil does nothing.
func (a *Arena) Release(h Handle) {
	if h == Nil {
		return
	}

	a.pending = append(a.pending, h)

	for n := len(a.pending); n > 0; n = len(a.pending) {
		h = a.pending[n-1]
		a.pending = a.pending[:n-1]

		t := a.alive(h)

		t.refs--
		if t.refs > 0 {
			continue
		}

		for i := len(t.children) - 1; i >= 0; i-- {
			if t.children[i] != Nil {
				a.pending = append(a.pending, t.children[i])
			}
		}

		*t = term{}

		a.free = append(a.free, h)
		a.live--
	}
}

// Counter returns the number of ids issued so far.
func (a *Arena) Counter() uint64 {
	return a.counter
}

// Live returns the number of terms currently alive.
func (a *Arena) Live() int {
	return a.live
}

// Children returns the children of the group h. The slice belongs to the
// group and must not be modified.
func (a *Arena) Children(h Handle) []Handle {
	return a.get(h).children
}

// Glyph returns the printed form of the term h.
func (a *Arena) Glyph(h Handle) string {
	if !a.valid(h) {
		return "?"
	}

	return a.slots[h].Glyph()
}

// ID returns the unique id of the term h.
func (a *Arena) ID(h Handle) uint64 {
	return a.get(h).id
}

// Kind returns the kind of the term h, or Null if h is not alive.
func (a *Arena) Kind(h Handle) Kind {
	if !a.valid(h) {
		return Null
	}

	return a.slots[h].kind
}

// Op returns the operation of the primitive h.
func (a *Arena) Op(h Handle) primitive.Op {
	return a.get(h).op
}

// Refs returns the reference count of the term h. Zero means h is not alive.
func (a *Arena) Refs(h Handle) int {
	if !a.valid(h) {
		return 0
	}

	return a.slots[h].refs
}

// Text returns the unparsed text of the deferred term h.
func (a *Arena) Text(h Handle) []byte {
	return a.get(h).text
}

// Value returns the value of the literal h.
func (a *Arena) Value(h Handle) primitive.Value {
	return a.get(h).value
}

func (a *Arena) create(t term) Handle {
	a.counter++

	t.id = a.counter
	t.refs = 1

	var h Handle

	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = t
	} else {
		h = Handle(len(a.slots))
		a.slots = append(a.slots, t)
	}

	a.live++

	return h
}

func (a *Arena) get(h Handle) *term {
	if int(h) >= len(a.slots) {
		panic("handle " + strconv.Itoa(int(h)) + " out of range")
	}

	return &a.slots[h]
}

func (a *Arena) alive(h Handle) *term {
	t := a.get(h)
	if h == Nil || t.refs <= 0 {
		panic("handle " + strconv.Itoa(int(h)) + " is not alive")
	}

	return t
}

func (a *Arena) valid(h Handle) bool {
	return h != Nil && int(h) < len(a.slots) && a.slots[h].refs > 0
}
