package variant

import (
	"testing"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVariant(t *testing.T, lo, hi int, alt string, cov breakpoint.Coverage) Variant {
	t.Helper()
	v, err := New(breakpoint.Breakpoint{Lo: lo, Hi: hi}, alt, cov)
	require.NoError(t, err)
	return v
}

func TestStoreCanonicalOrder(t *testing.T) {
	s := NewStore(2)
	cov := breakpoint.NewCoverageAll(2)

	// Insert out of order; expect canonical order back: lo asc, then
	// insertions (span 0) before sub/del at the same lo, then span asc,
	// then alt asc.
	require.NoError(t, s.Insert(mustVariant(t, 5, 8, "GG", cov)))  // substitution at 5, span 3
	require.NoError(t, s.Insert(mustVariant(t, 5, 5, "A", cov)))   // insertion at 5
	require.NoError(t, s.Insert(mustVariant(t, 2, 2, "T", cov)))   // insertion at 2
	require.NoError(t, s.Insert(mustVariant(t, 5, 6, "C", cov)))   // substitution at 5, span 1

	all := s.All()
	require.Len(t, all, 4)
	assert.Equal(t, 2, all[0].BP.Lo)
	assert.Equal(t, 5, all[1].BP.Lo)
	assert.Equal(t, 0, all[1].BP.Span()) // the insertion sorts first among lo==5
	assert.Equal(t, 1, all[2].BP.Span()) // then the shorter substitution
	assert.Equal(t, 3, all[3].BP.Span())
}

func TestStoreRejectsDuplicate(t *testing.T) {
	s := NewStore(2)
	cov := breakpoint.NewCoverageAll(2)
	v := mustVariant(t, 3, 6, "GG", cov)
	require.NoError(t, s.Insert(v))
	require.Error(t, s.Insert(v))
}

func TestStoreRejectsDomainMismatch(t *testing.T) {
	s := NewStore(4)
	v := mustVariant(t, 3, 6, "GG", breakpoint.NewCoverageAll(2))
	require.Error(t, s.Insert(v))
}

func TestStoreVariantsAtAndNextLowBreakend(t *testing.T) {
	s := NewStore(2)
	cov := breakpoint.NewCoverageAll(2)
	require.NoError(t, s.Insert(mustVariant(t, 2, 2, "T", cov)))
	require.NoError(t, s.Insert(mustVariant(t, 5, 8, "GG", cov)))

	assert.Len(t, s.VariantsAt(2), 1)
	assert.Len(t, s.VariantsAt(3), 0)
	assert.Equal(t, 5, s.NextLowBreakend(2, 100))
	assert.Equal(t, 100, s.NextLowBreakend(5, 100))
}
