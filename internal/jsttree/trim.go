package jsttree

// trimmed tracks, along each path, how much trailing context could
// still be borrowed by a later left_extend (capped at k-1). An edge
// that ends at a sink without enough total length — its own content
// plus the context available to it — to ever contain a full k-length
// window is marked Unviable so Prune can drop it.
type trimmed struct {
	inner Cursor
	k     int
	avail int
}

// Trim is the third pipeline stage, run before Prune so truncation
// determines reachability (spec.md §9).
func Trim(root Cursor, k int) Cursor {
	return trimmed{inner: root, k: k, avail: 0}
}

func (c trimmed) IsSink() bool { return c.inner.IsSink() }

func (c trimmed) Edges() []Edge {
	edges := c.inner.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		cargo := e.Cargo
		total := c.avail + len(cargo.Seq)
		if e.Child.IsSink() && total < c.k {
			cargo.Unviable = true
		}
		nextAvail := total
		if nextAvail > c.k-1 {
			nextAvail = c.k - 1
		}
		out[i] = Edge{Cargo: cargo, Child: trimmed{inner: e.Child, k: c.k, avail: nextAvail}}
	}
	return out
}
