package jsttree

// leftExtended prepends up to k1 trailing bytes of deterministic
// preceding context to each edge's cargo, so a window that straddles
// an edge boundary can still be recognized from the later edge alone.
// Across an alternate split the extension is drawn from the chosen
// branch; across the reference, from the reference — guaranteed here
// because each child gets its own independent copy of buf.
type leftExtended struct {
	inner Cursor
	k1    int
	buf   string
}

// LeftExtend is the fifth pipeline stage, run after Trim/Prune so it
// only does work for edges that survived pruning.
func LeftExtend(root Cursor, k1 int) Cursor {
	return leftExtended{inner: root, k1: k1, buf: ""}
}

func (c leftExtended) IsSink() bool { return c.inner.IsSink() }

func (c leftExtended) Edges() []Edge {
	edges := c.inner.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		cargo := e.Cargo
		cargo.ContextLen = len(c.buf)
		cargo.Seq = c.buf + cargo.Seq
		out[i] = Edge{
			Cargo: cargo,
			Child: leftExtended{inner: e.Child, k1: c.k1, buf: lastN(cargo.Seq, c.k1)},
		}
	}
	return out
}

func lastN(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
