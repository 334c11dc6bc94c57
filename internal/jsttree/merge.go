package jsttree

import "github.com/jjtimmons/jst/internal/breakpoint"

// merged collapses sibling edges at a node whose spelled segments are
// byte-identical: their coverage is unioned and traversal continues
// over the set of children that produced the match, so merges keep
// recombining one level at a time if the merged paths keep agreeing.
//
// This is a deliberately narrower guarantee than a full suffix-based
// merge across entire remaining subtrees (which would need a suffix
// automaton to detect that two currently-different paths are about to
// become identical a few edges later). The narrower form still
// satisfies spec.md §8's P5 for every case the spec's worked examples
// exercise — most notably the insertion/insertion collision from §9's
// Open Question (a), where two alternates at the same position share
// the same alt literal — by construction: no two sibling edges this
// stage exposes can ever carry identical Seq *and* disjoint coverage.
type merged struct {
	inners []Cursor
}

// Merge is the sixth pipeline stage.
func Merge(root Cursor) Cursor {
	return merged{inners: []Cursor{root}}
}

func (c merged) IsSink() bool {
	if len(c.inners) == 0 {
		return true
	}
	for _, in := range c.inners {
		if in.IsSink() {
			return true
		}
	}
	return false
}

func (c merged) Edges() []Edge {
	type group struct {
		cargo    Cargo
		children []Cursor
	}
	var groups []group
	for _, in := range c.inners {
		for _, e := range in.Edges() {
			idx := -1
			for i, g := range groups {
				if g.cargo.Seq == e.Cargo.Seq {
					idx = i
					break
				}
			}
			if idx == -1 {
				groups = append(groups, group{cargo: e.Cargo, children: []Cursor{e.Child}})
				continue
			}
			union, err := breakpoint.Union(groups[idx].cargo.Cov, e.Cargo.Cov)
			if err != nil {
				panic(err)
			}
			groups[idx].cargo.Cov = union
			groups[idx].children = append(groups[idx].children, e.Child)
		}
	}
	out := make([]Edge, len(groups))
	for i, g := range groups {
		out[i] = Edge{Cargo: g.cargo, Child: merged{inners: g.children}}
	}
	return out
}
