package jsttree

import (
	"fmt"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/jsterr"
	"github.com/jjtimmons/jst/internal/variant"
)

// Seeker resumes a raw traversal at a previously saved coordinate
// instead of replaying it from the root (spec.md §4.6's seek stage).
// The decorated stages above Raw (label/trim/prune/left_extend/merge)
// legitimately restart their own rolling state from whatever a seek
// lands on — that state describes *how we got here*, which a seek, by
// definition, skips.
type Seeker struct {
	store *variant.Store
	src   string
}

// Seekable is the seventh pipeline stage, exposed as a factory rather
// than a Cursor wrapper since seeking produces a brand new root, not a
// further-decorated view of the existing one.
func Seekable(store *variant.Store, src string) Seeker {
	return Seeker{store: store, src: src}
}

// Root resumes the traversal at the very beginning.
func (s Seeker) Root() Raw {
	return Root(s.src, s.store)
}

// At resumes the traversal immediately after variant at variantIndex
// (in canonical store order), restricted to the sequences that carry
// it.
func (s Seeker) At(variantIndex int) (Raw, error) {
	all := s.store.All()
	if variantIndex < 0 || variantIndex >= len(all) {
		return Raw{}, fmt.Errorf("%w: variant index %d out of range [0,%d)", jsterr.ErrInvalidCoordinate, variantIndex, len(all))
	}
	v := all[variantIndex]
	cov, err := breakpoint.Intersect(breakpoint.NewCoverageAll(s.store.DomainSize()), v.Cov)
	if err != nil {
		return Raw{}, err
	}
	r := NewRaw(s.store, s.src, v.BP.Hi, cov)
	r.afterInsertion = v.BP.Span() == 0
	return r, nil
}
