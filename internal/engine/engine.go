// Released under an MIT license. See LICENSE.

// Package engine provides the reduction loop for ski programs.
//
// The reduction window holds the front of the computation: the term at
// position 0 applied to the term at position 1 applied to the term at
// position 2 and so on. Each step rewrites the front of the window.
// Parenthesized text is expanded only when it reaches position 0 and S
// builds a deferred group rather than applying y to z immediately.
package engine

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/ski/internal/common/struct/ring"
	"github.com/michaelmacinnis/ski/internal/engine/primitive"
	"github.com/michaelmacinnis/ski/internal/engine/term"
	"github.com/michaelmacinnis/ski/internal/system/trace"
)

// Defaults used when a Config field is left at its zero value.
const (
	DefaultCapacity = 100
	DefaultFuel     = 12000
)

// Config holds the settings for a new engine.
type Config struct {
	Capacity int       // Initial window capacity.
	Fuel     uint64    // Halt once more than this many terms have been created.
	Input    io.Reader // Read by the input primitive.
	Output   io.Writer // Written by the output primitive.
	Trace    *trace.T  // Step-by-step diagnostics.
}

// T (engine) holds the state of a single reduction.
type T struct {
	acc    primitive.Value
	arena  *term.Arena
	err    error
	fuel   uint64
	ops    *primitive.Registry
	status Status
	trace  *trace.T
	window *ring.T
}

type engine = T

// New creates a new engine with an empty window.
func New(cfg Config) *engine {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	if cfg.Fuel == 0 {
		cfg.Fuel = DefaultFuel
	}

	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return &engine{
		arena:  term.NewArena(),
		fuel:   cfg.Fuel,
		ops:    primitive.New(cfg.Input, cfg.Output),
		trace:  cfg.Trace,
		window: ring.New(cfg.Capacity),
	}
}

// Load places program in the window as a single deferred term, followed by
// the literal zero and the built-in operations.
func (e *engine) Load(program []byte) {
	e.Push(e.arena.Deferred(program))
	e.Push(e.arena.Literal(0))

	for _, o := range primitive.Seeds() {
		e.Push(e.arena.Primitive(o))
	}
}

// Push appends h to the window. The caller's reference moves to the window.
func (e *engine) Push(h term.Handle) {
	e.window.Push(h)
}

// Run steps the engine until it halts or ctx is done.
func (e *engine) Run(ctx context.Context) Status {
	for {
		if ctx.Err() != nil {
			e.status = Interrupted
			return e.status
		}

		if s := e.Step(); s.Halted() {
			return s
		}
	}
}

// Step performs a single rewrite and returns the resulting status.
func (e *engine) Step() Status {
	if e.status.Halted() {
		return e.status
	}

	if e.window.Len() == 0 {
		e.status = Done
		return e.status
	}

	if e.arena.Counter() > e.fuel {
		e.status = Exhausted
		return e.status
	}

	if e.trace.Enabled() {
		e.trace.Printf("%s << %d", e.Render(), e.window.Len())
	}

	h := e.window.Get(0)

	switch e.arena.Kind(h) {
	case term.I:
		e.status = e.i()
	case term.K:
		e.status = e.k()
	case term.S:
		e.status = e.s()
	case term.Group:
		e.splice(h)
	case term.Deferred:
		e.status = e.expand(h)
	case term.Primitive:
		e.acc = e.ops.Apply(e.arena.Op(h), e.acc)
		e.drop(1)
	case term.Literal:
		e.acc = e.arena.Value(h)
		e.drop(1)
	default:
		e.status = Malformed
	}

	if e.status == Running && e.window.Len() == 0 {
		e.status = Done
	}

	return e.status
}

// Close releases every term left in the window.
func (e *engine) Close() {
	e.drop(e.window.Len())
}

// Accumulator returns the current accumulator value.
func (e *engine) Accumulator() primitive.Value {
	return e.acc
}

// Arena returns the arena that owns the engine's terms.
func (e *engine) Arena() *term.Arena {
	return e.arena
}

// Counter returns the number of terms created so far.
func (e *engine) Counter() uint64 {
	return e.arena.Counter()
}

// Err returns the parse error that halted the engine, if any.
func (e *engine) Err() error {
	return e.err
}

// Len returns the number of terms in the window.
func (e *engine) Len() int {
	return e.window.Len()
}

// Render returns the window as a string of glyphs.
func (e *engine) Render() string {
	var b strings.Builder

	for i := 0; i < e.window.Len(); i++ {
		b.WriteString(e.arena.Glyph(e.window.Get(i)))
	}

	return b.String()
}

// Status returns the engine's current status.
func (e *engine) Status() Status {
	return e.status
}

// Window returns the handles in the window in order.
func (e *engine) Window() []term.Handle {
	return e.window.Slice()
}

// Snapshot returns a copy of every term in the window.
func (e *engine) Snapshot() []term.Node {
	hs := e.window.Slice()

	ns := make([]term.Node, len(hs))
	for i, h := range hs {
		ns[i] = e.arena.Snapshot(h)
	}

	return ns
}

// drop releases and removes the first n terms.
func (e *engine) drop(n int) {
	for i := 0; i < n; i++ {
		e.arena.Release(e.window.Get(i))
	}

	e.window.Advance(n)
}
