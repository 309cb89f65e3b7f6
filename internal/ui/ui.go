// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for ski.
package ui

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/ski/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to run entered programs.
type Evaluator interface {
	Evaluate(program []byte)
}

// Run prompts for programs and sends each one to the Evaluator until the
// user ends input.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		println(err.Error())
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			println(err.Error())
		}
	}()

	for {
		line, err := cli.Prompt("ski> ")

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			os.Stdout.Write([]byte("\n"))
			return
		default:
			println(err.Error())
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cli.AppendHistory(line)

		e.Evaluate([]byte(line))
	}
}
