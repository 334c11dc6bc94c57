package jsttree

// coloured is a pass-through stage. The raw cursor (component D)
// already attaches coverage to every edge's cargo, since an edge's
// existence is itself gated on non-empty coverage, not a cosmetic
// annotation added afterward. Coloured exists so the pipeline keeps
// the stage order and count spec.md §4.6 describes, and so callers can
// still test "coverage is visible by this point in the pipeline"
// independently of trim/prune/left_extend/merge.
type coloured struct {
	inner Cursor
}

// Coloured is the second pipeline stage.
func Coloured(root Cursor) Cursor {
	return coloured{inner: root}
}

func (c coloured) IsSink() bool  { return c.inner.IsSink() }
func (c coloured) Edges() []Edge { return c.inner.Edges() }
