/*
Ski runs programs written in the S, K and I combinators.

A program is a single line of S, K, I and parentheses. It is applied to
a literal zero followed by three built-in operations: successor, output
and input. The built-ins act on an accumulator. A literal sets it,
successor increments it, output writes it to stdout as a byte and input
replaces it with a byte read from stdin.

Parenthesized terms are expanded only when they reach the front of the
reduction window, so programs may be far larger than the terms they
build. Reduction stops when the window is empty, when a combinator is
missing arguments, or when more terms have been created than the fuel
allows.

	ski program.ski
	ski --fuel=100000 -t program.ski
	ski -i

Ski is released under an MIT-style license.
*/
package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/michaelmacinnis/ski/internal/engine"
	"github.com/michaelmacinnis/ski/internal/system/interrupt"
	"github.com/michaelmacinnis/ski/internal/system/options"
	"github.com/michaelmacinnis/ski/internal/system/trace"
	"github.com/michaelmacinnis/ski/internal/ui"
)

type runner struct {
	cfg    engine.Config
	dump   bool
	report io.Writer
}

// Evaluate runs program to completion and reports the result.
func (r *runner) Evaluate(program []byte) {
	ctx, stop := interrupt.Context(context.Background())
	defer stop()

	e := engine.New(r.cfg)
	defer e.Close()

	e.Load(program)

	s := e.Run(ctx)

	r.cfg.Trace.Printf("halted: %v", s)

	if r.dump {
		trace.New(true).Dump("window", e.Snapshot())
	}

	if err := e.Report(r.report); err != nil {
		println(err.Error())
	}
}

func main() {
	if err := options.Parse(nil); err != nil {
		os.Exit(1)
	}

	r := &runner{
		cfg: engine.Config{
			Capacity: options.Capacity(),
			Fuel:     options.Fuel(),
			Input:    os.Stdin,
			Output:   os.Stdout,
			Trace:    trace.New(options.Trace()),
		},
		dump:   options.Dump(),
		report: os.Stdout,
	}

	if options.Interactive() {
		ui.Run(r)
		return
	}

	program, err := load(options.Program())
	if err != nil {
		os.Exit(1)
	}

	r.Evaluate(program)
}

// load returns the first line of the file at path.
func load(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}

	return bytes.TrimSuffix(b, []byte("\r")), nil
}
