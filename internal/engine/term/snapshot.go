// Released under an MIT license. See LICENSE.

package term

// Node is a plain copy of a term and everything it refers to.
type Node struct {
	Kind     string
	ID       uint64
	Refs     int
	Op       string
	Text     string
	Value    uint64
	Children []Node
}

// Snapshot copies the term h, and for a group its children, into a Node.
func (a *Arena) Snapshot(h Handle) Node {
	if !a.valid(h) {
		return Node{Kind: Null.String()}
	}

	t := &a.slots[h]

	n := Node{
		Kind: t.kind.String(),
		ID:   t.id,
		Refs: t.refs,
	}

	switch t.kind {
	case Deferred:
		n.Text = string(t.text)
	case Literal:
		n.Value = uint64(t.value)
	case Primitive:
		n.Op = t.op.String()
	case Group:
		n.Children = make([]Node, len(t.children))
		for i, c := range t.children {
			n.Children[i] = a.Snapshot(c)
		}
	}

	return n
}

// Shape returns the term h written back out as source text, with primitives
// and literals shown as their glyphs. Deferred text is shown as is.
func (a *Arena) Shape(h Handle) string {
	switch a.Kind(h) {
	case Group:
		s := "("
		for _, c := range a.Children(h) {
			s += a.Shape(c)
		}

		return s + ")"
	case Deferred:
		return string(a.Text(h))
	}

	return a.Glyph(h)
}
