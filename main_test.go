package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/ski/internal/engine"
	"github.com/michaelmacinnis/ski/internal/system/trace"
)

func program(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "program.ski")

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadFirstLine(t *testing.T) {
	for text, expected := range map[string]string{
		"":              "",
		"SKI":           "SKI",
		"SKI\n":         "SKI",
		"S(KI)\r\n":     "S(KI)",
		"(SK)\nignored": "(SK)",
	} {
		b, err := load(program(t, text))
		if err != nil {
			t.Fatal(err)
		}

		if string(b) != expected {
			t.Fatalf("load(%q): expected %q; got %q", text, expected, b)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected an error")
	}
}

func TestEvaluate(t *testing.T) {
	for _, c := range []struct {
		program string
		input   string
		output  string
		report  string
	}{
		{"I", "", "\x01", "\n0 7\n"},
		{"K", "", "\x00", "\n0 7\n"},
		{"", "", "\x01", "\n0 6\n"},
		{"(SK", "", "", "Incomplete parse\n(=)vfff\n5 5\n"},
		{"SK)", "", "", "Incomplete parse\n(=)vfff\n5 7\n"},
	} {
		var out, report, log bytes.Buffer

		r := &runner{
			cfg: engine.Config{
				Input:  strings.NewReader(c.input),
				Output: &out,
				Trace:  trace.To(&log, true),
			},
			report: &report,
		}

		r.Evaluate([]byte(c.program))

		if out.String() != c.output {
			t.Fatalf("%q: expected output %q; got %q", c.program, c.output, out.String())
		}

		if report.String() != c.report {
			t.Fatalf("%q: expected report %q; got %q", c.program, c.report, report.String())
		}

		if !strings.Contains(log.String(), "halted") {
			t.Fatalf("%q: expected a trace; got %q", c.program, log.String())
		}
	}
}
