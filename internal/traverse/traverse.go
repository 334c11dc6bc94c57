// Package traverse implements the DFS driver (spec.md §4.7) over a
// jsttree.Cursor, plus Run, which ties the traverser to a
// matcher.Matcher and resolves hits to per-sequence coordinates.
package traverse

import "github.com/jjtimmons/jst/internal/jsttree"

type edgeFrame struct {
	edges []jsttree.Edge
	idx   int
}

// Traverser is a single-consumer, clonable DFS iterator over a
// jsttree.Cursor's edges, visiting the leftmost reference child, then
// each alternate in canonical order, then ascending — exactly spec.md
// §4.7's order. Usage follows the bufio.Scanner idiom:
//
//	t := traverse.New(root)
//	for t.Next() {
//	    cargo := t.Cargo()
//	    ...
//	}
type Traverser struct {
	stack []edgeFrame
	cargo jsttree.Cargo
}

// New returns a Traverser positioned before the first edge of root.
func New(root jsttree.Cursor) *Traverser {
	return &Traverser{stack: []edgeFrame{{edges: root.Edges()}}}
}

// Next advances to the next cargo in DFS order. It returns false once
// every path has been fully visited; Cargo must not be called after
// that.
func (t *Traverser) Next() bool {
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.idx >= len(top.edges) {
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		e := top.edges[top.idx]
		top.idx++
		t.cargo = e.Cargo
		t.stack = append(t.stack, edgeFrame{edges: e.Child.Edges()})
		return true
	}
	return false
}

// Cargo returns the cargo of the edge most recently visited by Next.
func (t *Traverser) Cargo() jsttree.Cargo { return t.cargo }

// Clone returns an independent copy of the traverser that can continue
// on its own without affecting t, satisfying spec.md §5's clonable
// traverser requirement.
func (t *Traverser) Clone() *Traverser {
	cp := &Traverser{cargo: t.cargo, stack: make([]edgeFrame, len(t.stack))}
	copy(cp.stack, t.stack)
	return cp
}
