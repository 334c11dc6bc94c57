package jsttree

// Pipeline builds the standard window-search view over a raw cursor,
// in the exact stage order demonstrated by
// jstmap-search/pigeonhole_filter.hpp's
//
//	base_tree | labelled() | coloured() | trim(k-1) | prune() |
//	left_extend(k-1) | merge()
//
// Go has no pipe operator to overload, so the composition is written
// as nested calls instead, but the shape and order are unchanged.
// windowSize is the matcher's window size k; seek is exposed
// separately via Seekable since it produces a new root rather than
// wrapping an existing one.
func Pipeline(root Cursor, windowSize int) Cursor {
	c := Labelled(root)
	c = Coloured(c)
	c = Trim(c, windowSize)
	c = Prune(c)
	c = LeftExtend(c, windowSize-1)
	c = Merge(c)
	return c
}
