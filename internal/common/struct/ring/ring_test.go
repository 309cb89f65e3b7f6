// Released under an MIT license. See LICENSE.

package ring

import (
	"testing"

	"github.com/michaelmacinnis/ski/internal/engine/term"
)

func fill(r *ring, from, to int) {
	for i := from; i <= to; i++ {
		r.Push(term.Handle(i))
	}
}

func check(t *testing.T, r *ring, expected ...int) {
	t.Helper()

	if r.Len() != len(expected) {
		t.Fatalf("Expected %d handles; got %d", len(expected), r.Len())
	}

	for i, e := range expected {
		if a := r.Get(i); a != term.Handle(e) {
			t.Fatalf("Expected %d at %d; got %d", e, i, a)
		}
	}
}

func TestAdvance(t *testing.T) {
	r := New(4)
	fill(r, 1, 4)

	if !r.Advance(3) {
		t.Fatal("Expected advance to succeed")
	}

	check(t, r, 4)

	if r.Offset() != 3 {
		t.Fatalf("Expected offset 3; got %d", r.Offset())
	}

	if r.Advance(2) {
		t.Fatal("Expected advance past the end to fail")
	}

	check(t, r, 4)

	if !r.Advance(1) || r.Offset() != 0 {
		t.Fatalf("Expected offset to wrap to 0; got %d", r.Offset())
	}
}

func TestWrap(t *testing.T) {
	r := New(4)
	fill(r, 1, 4)
	r.Advance(2)
	fill(r, 5, 6)

	check(t, r, 3, 4, 5, 6)

	r.Set(3, 9)

	check(t, r, 3, 4, 5, 9)
}

func TestGrowLinearizes(t *testing.T) {
	r := New(4)
	fill(r, 1, 4)
	r.Advance(3)
	fill(r, 5, 7)

	check(t, r, 4, 5, 6, 7)

	r.Grow(5)

	if r.Cap() != 8 {
		t.Fatalf("Expected capacity to double to 8; got %d", r.Cap())
	}

	if r.Offset() != 0 {
		t.Fatalf("Expected offset 0; got %d", r.Offset())
	}

	check(t, r, 4, 5, 6, 7)

	r.Grow(20)

	if r.Cap() != 20 {
		t.Fatalf("Expected capacity 20; got %d", r.Cap())
	}

	check(t, r, 4, 5, 6, 7)
}

func TestGrowNoop(t *testing.T) {
	r := New(4)
	fill(r, 1, 2)
	r.Advance(1)

	r.Grow(4)

	if r.Cap() != 4 || r.Offset() != 1 {
		t.Fatalf("Expected ring to be unchanged; got cap %d offset %d", r.Cap(), r.Offset())
	}
}

func TestPushGrows(t *testing.T) {
	r := New(2)
	fill(r, 1, 5)

	check(t, r, 1, 2, 3, 4, 5)

	if r.Cap() != 8 {
		t.Fatalf("Expected capacity 8; got %d", r.Cap())
	}
}

func TestRewind(t *testing.T) {
	r := New(5)
	fill(r, 1, 3)

	if !r.Rewind(2) {
		t.Fatal("Expected rewind to succeed")
	}

	if r.Offset() != 3 {
		t.Fatalf("Expected offset 3; got %d", r.Offset())
	}

	r.Set(0, 8)
	r.Set(1, 9)

	check(t, r, 8, 9, 1, 2, 3)

	if r.Rewind(1) {
		t.Fatal("Expected rewind past capacity to fail")
	}

	check(t, r, 8, 9, 1, 2, 3)
}

func TestGetOutOfRangePanics(t *testing.T) {
	r := New(4)
	fill(r, 1, 2)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic")
		}
	}()

	r.Get(2)
}

func TestSlice(t *testing.T) {
	r := New(3)
	fill(r, 1, 3)
	r.Advance(2)
	fill(r, 4, 5)

	s := r.Slice()
	if len(s) != 3 || s[0] != 3 || s[1] != 4 || s[2] != 5 {
		t.Fatalf("Expected [3 4 5]; got %v", s)
	}
}
