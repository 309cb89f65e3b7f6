// Released under an MIT license. See LICENSE.

package vec

import (
	"testing"

	"github.com/michaelmacinnis/ski/internal/engine/term"
)

func TestGrowth(t *testing.T) {
	v := New()

	if v.Len() != 0 || v.Cap() != 0 {
		t.Fatalf("Expected an empty vec; got len %d cap %d", v.Len(), v.Cap())
	}

	for i, expected := range []int{
		10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20, 20, 20,
		40,
	} {
		v.Append(term.Handle(i + 1))

		if v.Cap() != expected {
			t.Fatalf("After %d appends expected cap %d; got %d", i+1, expected, v.Cap())
		}
	}

	for i := 0; i < v.Len(); i++ {
		if v.At(i) != term.Handle(i+1) {
			t.Fatalf("Expected %d at %d; got %d", i+1, i, v.At(i))
		}
	}
}

func TestItemsMovesOwnership(t *testing.T) {
	a := term.NewArena()

	v := New()
	v.Append(a.Combinator(term.S))
	v.Append(a.Combinator(term.K))

	g := a.Group(v.Items())

	if v.Len() != 0 {
		t.Fatalf("Expected vec to be empty; got %d", v.Len())
	}

	a.Release(g)

	if a.Live() != 0 {
		t.Fatalf("Expected no live terms; got %d", a.Live())
	}
}

func TestRelease(t *testing.T) {
	a := term.NewArena()

	v := New()
	for i := 0; i < 25; i++ {
		v.Append(a.Combinator(term.I))
	}

	v.Release(a)

	if a.Live() != 0 {
		t.Fatalf("Expected no live terms; got %d", a.Live())
	}
}
