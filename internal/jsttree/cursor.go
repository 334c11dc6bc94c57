// Package jsttree implements the breakpoint sequence tree (spec.md
// §4.5) and its adaptor pipeline (§4.6): a virtual tree over a source
// sequence and a variant store, where every root-to-sink path spells
// exactly one distinct derived sequence.
package jsttree

import (
	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/variant"
)

// Cargo is the payload carried by one edge of the tree: the spelled
// segment, the coverage of sequences that take this edge, and (once
// the pipeline has labelled and left-extended it) its placement in the
// derived coordinate space.
type Cargo struct {
	// Seq is the spelled segment for this edge. Before LeftExtend runs
	// it is exactly the new content of the edge; afterward it is
	// prefixed with up to ContextLen bytes of borrowed trailing
	// context from the path so far.
	Seq string
	// Cov is the coverage of sequences that take this edge.
	Cov breakpoint.Coverage
	// DerivedLo/DerivedHi bound the edge's *new* content (excluding any
	// borrowed context) in the derived sequence's coordinate space.
	// Both are -1 until Labelled has run.
	DerivedLo, DerivedHi int
	// ContextLen is the number of bytes at the front of Seq borrowed
	// from the preceding path rather than newly introduced by this
	// edge. Zero until LeftExtend has run.
	ContextLen int
	// Unviable is set by Trim when this edge, even after maximal left
	// extension, cannot contain a full window — Prune removes it.
	Unviable bool
	// Reference reports whether this edge carries unedited source
	// content rather than a variant's alternate allele. Purely
	// cosmetic — used by `jst view` to colour reference and alternate
	// edges differently — and never consulted by the pipeline itself.
	Reference bool
}

// Edge is one outgoing transition from a tree node: the cargo it
// produces plus the cursor it leads to.
type Edge struct {
	Cargo Cargo
	Child Cursor
}

// Cursor is the shape every stage of the adaptor pipeline implements:
// a node that is either a sink (no outgoing edges) or offers a set of
// edges in the canonical order spec.md §4.7 traverses (reference edge
// first, then each alternate in canonical variant order).
type Cursor interface {
	IsSink() bool
	Edges() []Edge
}

// Raw is the undecorated breakpoint sequence tree node (component D):
// a position on the source plus the coverage of sequences still on
// this path, and whether the node was reached through an insertion
// starting at that same position. Such a node does not offer the
// insertions at its position again, so every variant is taken at most
// once per path.
//
// The spec's node definition also mentions "a stack of pending high
// breakends for alternates still open." That stack collapses to
// nothing here: every alternate edge jumps pos straight to its own
// high breakend (spec.md §9's resolution of deletions spanning a later
// variant's low breakend — that variant is simply never visited on the
// deletion branch), so no path can ever have more than the one
// outstanding position it currently sits at.
type Raw struct {
	store *variant.Store
	src   string
	pos   int
	cov   breakpoint.Coverage

	afterInsertion bool
}

// Root returns the tree's root: position 0, every sequence in the
// store's domain on the path.
func Root(src string, store *variant.Store) Raw {
	return Raw{store: store, src: src, pos: 0, cov: breakpoint.NewCoverageAll(store.DomainSize())}
}

// NewRaw builds a raw cursor at an explicit (pos, cov), used by Seek to
// resume a traversal without replaying it from the root.
func NewRaw(store *variant.Store, src string, pos int, cov breakpoint.Coverage) Raw {
	return Raw{store: store, src: src, pos: pos, cov: cov}
}

// Position is the current offset on the source sequence.
func (c Raw) Position() int { return c.pos }

// Coverage is the set of sequences still following this path.
func (c Raw) Coverage() breakpoint.Coverage { return c.cov }

// IsSink reports whether this node has consumed the whole source,
// i.e. it is a terminal node spelling one complete distinct sequence.
func (c Raw) IsSink() bool { return c.pos >= len(c.src) }

// Edges computes the reference edge (if any coverage remains on it)
// followed by one alternate edge per compatible variant starting
// exactly at this node's position, in canonical order.
func (c Raw) Edges() []Edge {
	if c.IsSink() {
		return nil
	}
	here := c.store.VariantsAt(c.pos)
	next := c.store.NextLowBreakend(c.pos, len(c.src))

	refCov := c.cov
	alt := make([]Edge, 0, len(here))
	for _, v := range here {
		if c.afterInsertion && v.BP.Span() == 0 {
			continue
		}
		sub, err := breakpoint.Intersect(c.cov, v.Cov)
		if err != nil {
			panic(err)
		}
		if !sub.Any() {
			continue
		}
		refCov, err = breakpoint.Difference(refCov, sub)
		if err != nil {
			panic(err)
		}
		alt = append(alt, Edge{
			Cargo: Cargo{Seq: v.Alt, Cov: sub, DerivedLo: -1, DerivedHi: -1, Reference: false},
			Child: Raw{store: c.store, src: c.src, pos: v.BP.Hi, cov: sub, afterInsertion: v.BP.Span() == 0},
		})
	}

	edges := make([]Edge, 0, len(alt)+1)
	if refCov.Any() {
		edges = append(edges, Edge{
			Cargo: Cargo{Seq: c.src[c.pos:next], Cov: refCov, DerivedLo: -1, DerivedHi: -1, Reference: true},
			Child: Raw{store: c.store, src: c.src, pos: next, cov: refCov},
		})
	}
	edges = append(edges, alt...)
	return edges
}
