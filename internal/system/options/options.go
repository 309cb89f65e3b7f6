// Released under an MIT license. See LICENSE.

// Package options parses ski's command line.
package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// ErrUsage is returned for any command line that does not match the usage.
var ErrUsage = errors.New("invalid command line")

//nolint:gochecknoglobals
var (
	capacity    int
	dump        bool
	fuel        uint64
	interactive bool
	program     string
	traced      bool
	usage       = `ski

Usage:
  ski [-t] [-d] [--fuel=N] [--capacity=N] PROGRAM
  ski [-t] [-d] [--fuel=N] [--capacity=N] -i
  ski -h

Arguments:
  PROGRAM  Path to the program. Only the first line is read.

Options:
  -i, --interactive  Read programs from a prompt. Requires a terminal.
  -t, --trace        Trace each reduction step on stderr.
  -d, --dump         Dump the final window on stderr.
  --fuel=N           Stop after more than N terms are created [default: 12000].
  --capacity=N       Initial reduction window capacity [default: 100].
  -h, --help         Display this help.

After reduction stops, ski prints the window, one glyph per term, then the
window size and the number of terms created.
`
)

// Capacity returns the initial window capacity.
func Capacity() int {
	return capacity
}

// Dump returns true if the final window should be dumped.
func Dump() bool {
	return dump
}

// Fuel returns the fuel ceiling.
func Fuel() uint64 {
	return fuel
}

// Interactive returns true if programs should be read from a prompt.
func Interactive() bool {
	return interactive
}

// Parse parses argv. Help is printed, and the process exits, when asked for.
// A command line that does not match the usage returns ErrUsage and prints
// nothing.
func Parse(argv []string) error {
	p := &docopt.Parser{
		HelpHandler: func(err error, usage string) {
			if err == nil {
				fmt.Print(usage)
				os.Exit(0)
			}
		},
	}

	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return ErrUsage
	}

	program, _ = opts.String("PROGRAM")
	dump, _ = opts.Bool("--dump")
	traced, _ = opts.Bool("--trace")

	interactive, _ = opts.Bool("--interactive")
	if interactive && !isatty.IsTerminal(os.Stdin.Fd()) {
		return ErrUsage
	}

	capacity, err = opts.Int("--capacity")
	if err != nil || capacity < 1 {
		return ErrUsage
	}

	s, _ := opts.String("--fuel")

	fuel, err = strconv.ParseUint(s, 10, 64)
	if err != nil || fuel == 0 {
		return ErrUsage
	}

	return nil
}

// Program returns the path to the program.
func Program() string {
	return program
}

// Trace returns true if each step should be traced.
func Trace() bool {
	return traced
}
