// Released under an MIT license. See LICENSE.

// Package primitive provides the built-in operations available to ski
// programs. Each operation maps the accumulator to a new accumulator.
package primitive

import (
	"bufio"
	"io"
	"strconv"
)

// Value is the accumulator type. It doubles as a byte for I/O.
type Value uint64

// Op identifies a built-in operation.
type Op uint8

// Built-in operations.
const (
	Successor Op = iota
	Output
	Input
)

// String returns the operation's name. Useful for debugging.
func (o Op) String() string {
	switch o {
	case Successor:
		return "successor"
	case Output:
		return "output"
	case Input:
		return "input"
	}

	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Registry applies operations against a pair of byte streams.
type Registry struct {
	in  io.ByteReader
	out io.Writer
}

// New creates a new Registry reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Registry {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Registry{in: br, out: w}
}

// Apply performs the operation o with the accumulator v and returns the
// new accumulator.
func (r *Registry) Apply(o Op, v Value) Value {
	switch o {
	case Successor:
		return v + 1
	case Output:
		return r.write(v)
	case Input:
		return r.read()
	}

	panic("unknown primitive " + o.String())
}

// Seeds lists the operations that follow the literal zero in a fresh window.
func Seeds() []Op {
	return []Op{Successor, Output, Input}
}

func (r *Registry) read() Value {
	b, err := r.in.ReadByte()
	if err != nil {
		return 0
	}

	return Value(b)
}

func (r *Registry) write(v Value) Value {
	if _, err := r.out.Write([]byte{byte(v)}); err != nil {
		return 0
	}

	return 1
}
