// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package history

import (
	"io"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	called := false

	err := Load(func(r io.Reader) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if called {
		t.Fatal("Expected no history to be read")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "SKI\nS(KI)\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var saved []byte

	err = Load(func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		saved = b

		return len(b), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if string(saved) != "SKI\nS(KI)\n" {
		t.Fatalf("Expected saved history; got %q", saved)
	}
}
