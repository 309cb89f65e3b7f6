// Released under an MIT license. See LICENSE.

// Package term provides ski's reference-counted terms.
//
// Terms live in an Arena and are addressed by Handle. A term is shared by
// every structure holding its handle. Each holder owns one reference and
// gives it up with Release. When the last reference goes the slot is
// reclaimed and, for a group, each child is released in turn.
package term

import (
	"strconv"

	"github.com/michaelmacinnis/ski/internal/engine/primitive"
)

// Kind is a term's variant.
type Kind uint8

// Term kinds.
const (
	Null Kind = iota
	S
	K
	I
	Group
	Deferred
	Primitive
	Literal
)

// String returns the name of the kind k. Useful for debugging.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case S:
		return "S"
	case K:
		return "K"
	case I:
		return "I"
	case Group:
		return "Group"
	case Deferred:
		return "Deferred"
	case Primitive:
		return "Primitive"
	case Literal:
		return "Literal"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Combinator returns true if k is S, K or I.
func (k Kind) Combinator() bool {
	return k == S || k == K || k == I
}

// Handle refers to a term in an Arena. The zero Handle refers to nothing.
type Handle uint32

// Nil is the zero Handle.
const Nil Handle = 0

// T (term) is a single node in the term graph.
type T struct {
	children []Handle
	id       uint64
	kind     Kind
	op       primitive.Op
	refs     int
	text     []byte
	value    primitive.Value
}

type term = T

// Glyph returns the single-token rendering used when printing a window.
func (t *term) Glyph() string {
	switch t.kind {
	case S:
		return "S"
	case K:
		return "K"
	case I:
		return "I"
	case Group:
		return "(...)"
	case Deferred:
		return "(=)"
	case Primitive:
		return "f"
	case Literal:
		return "v"
	}

	return "?"
}
