package jsttree

// labelled wraps a Cursor, stamping each edge's cargo with its span in
// the derived coordinate space. Because every sequence sharing a tree
// path has, by construction, experienced the exact same edits up to
// this point, a single running offset is enough — there is no need to
// consult the journal of any individual covered sequence.
type labelled struct {
	inner Cursor
	pos   int
}

// Labelled is the first pipeline stage (spec.md §4.6).
func Labelled(root Cursor) Cursor {
	return labelled{inner: root, pos: 0}
}

func (c labelled) IsSink() bool { return c.inner.IsSink() }

func (c labelled) Edges() []Edge {
	edges := c.inner.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		cargo := e.Cargo
		cargo.DerivedLo = c.pos
		cargo.DerivedHi = c.pos + len(cargo.Seq)
		out[i] = Edge{Cargo: cargo, Child: labelled{inner: e.Child, pos: cargo.DerivedHi}}
	}
	return out
}
