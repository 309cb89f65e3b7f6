// Released under an MIT license. See LICENSE.

// Package lazy expands deferred program text into a group of terms.
//
// Only the top level of the text is parsed. Each parenthesized span at the
// top level becomes a new deferred term which is expanded in turn only when
// it reaches the front of the reduction window.
package lazy

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/ski/internal/common/struct/vec"
	"github.com/michaelmacinnis/ski/internal/engine/term"
)

// Parse errors.
var (
	ErrUnbalanced = errors.New("unbalanced parentheses")
	ErrUnexpected = errors.New("unexpected character")
)

// Expand parses one level of text and returns a new group holding the
// result. On failure every term created along the way is released and no
// group is returned.
func Expand(a *term.Arena, text []byte) (term.Handle, error) {
	begin, end := 0, len(text)
	if Enclosed(text) {
		begin++
		end--
	}

	v := vec.New()

	depth := 0
	start := 0

	for i := begin; i < end; i++ {
		c := text[i]

		if depth > 0 {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}

			if depth == 0 {
				v.Append(a.Deferred(text[start : i+1]))
			}

			continue
		}

		switch c {
		case 'S':
			v.Append(a.Combinator(term.S))
		case 'K':
			v.Append(a.Combinator(term.K))
		case 'I':
			v.Append(a.Combinator(term.I))
		case '(':
			start = i
			depth = 1
		case ')':
			v.Release(a)
			return term.Nil, fmt.Errorf("%w: ')' at offset %d", ErrUnbalanced, i)
		default:
			v.Release(a)
			return term.Nil, fmt.Errorf("%w: %q at offset %d", ErrUnexpected, c, i)
		}
	}

	if depth != 0 {
		v.Release(a)
		return term.Nil, fmt.Errorf("%w: '(' at offset %d is not closed", ErrUnbalanced, start)
	}

	return a.Group(v.Items()), nil
}

// Enclosed returns true if text starts with an opening parenthesis whose
// matching close is the final character.
func Enclosed(text []byte) bool {
	n := len(text)
	if n < 2 || text[0] != '(' || text[n-1] != ')' {
		return false
	}

	depth := 0

	for i, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}

		if depth == 0 && i < n-1 {
			return false
		}

		if depth < 0 {
			return false
		}
	}

	return depth == 0
}
