package jsttree

// pruned drops edges that can no longer contribute anything: either
// their coverage has gone empty, or Trim has already marked them
// Unviable (can never contain a full window).
type pruned struct {
	inner Cursor
}

// Prune is the fourth pipeline stage.
func Prune(root Cursor) Cursor {
	return pruned{inner: root}
}

func (c pruned) IsSink() bool { return c.inner.IsSink() }

func (c pruned) Edges() []Edge {
	edges := c.inner.Edges()
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !e.Cargo.Cov.Any() || e.Cargo.Unviable {
			continue
		}
		out = append(out, Edge{Cargo: e.Cargo, Child: pruned{inner: e.Child}})
	}
	return out
}
