package traverse

import (
	"sort"
	"testing"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/jsttree"
	"github.com/jjtimmons/jst/internal/matcher"
	"github.com/jjtimmons/jst/internal/telemetry"
	"github.com/jjtimmons/jst/internal/variant"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func substitutionTree(t *testing.T) (string, *variant.Store) {
	t.Helper()
	src := "AAAAAA"
	v, err := variant.New(breakpoint.Breakpoint{Lo: 2, Hi: 3}, "C", breakpoint.NewCoverageFromBits(1, 0))
	require.NoError(t, err)
	store := variant.NewStore(2)
	require.NoError(t, store.Insert(v))
	return src, store
}

func TestTraverserVisitsReferenceBeforeAlternate(t *testing.T) {
	src, store := substitutionTree(t)
	tr := New(jsttree.Root(src, store))

	// the root's only edge is the shared prefix "AA"; the split follows
	require.True(t, tr.Next())
	require.True(t, tr.Next())
	first := tr.Cargo()
	assert.True(t, first.Cov.Test(1), "reference branch (unaffected sequence) must be visited first")

	require.True(t, tr.Next())
	second := tr.Cargo()
	assert.True(t, second.Cov.Test(0), "alternate branch visited second")
}

func TestTraverserCloneIsIndependent(t *testing.T) {
	src, store := substitutionTree(t)
	tr := New(jsttree.Root(src, store))
	require.True(t, tr.Next())

	clone := tr.Clone()
	require.True(t, clone.Next())
	cloneCargo := clone.Cargo()

	require.True(t, tr.Next())
	origCargo := tr.Cargo()

	assert.Equal(t, cloneCargo, origCargo, "clone and original see the same next edge independently")

	// Advancing the clone further must not affect the original's stack.
	clone.Next()
	require.True(t, tr.Next())
}

func TestRunLiteralMatchResolvesToOwningSequenceOnly(t *testing.T) {
	src, store := substitutionTree(t)
	const k = 3
	root := jsttree.Pipeline(jsttree.Root(src, store), k)

	var hits []Hit
	Run(root, matcher.NewLiteral("CAA"), func(h Hit) { hits = append(hits, h) })

	require.Len(t, hits, 1)
	assert.Equal(t, Hit{Sequence: 0, Position: 2}, hits[0])
}

func TestRunAllWindowsCoversEverySequencePosition(t *testing.T) {
	src, store := substitutionTree(t)
	const k = 3
	root := jsttree.Pipeline(jsttree.Root(src, store), k)

	var hits []Hit
	Run(root, matcher.NewAllWindows(k), func(h Hit) { hits = append(hits, h) })

	bySeq := map[int][]int{}
	for _, h := range hits {
		bySeq[h.Sequence] = append(bySeq[h.Sequence], h.Position)
	}
	for seq := range bySeq {
		sort.Ints(bySeq[seq])
	}

	// Both derived sequences have length 6 and k=3, so each must emit
	// windows starting at 0,1,2,3 exactly once.
	assert.Equal(t, []int{0, 1, 2, 3}, bySeq[0])
	assert.Equal(t, []int{0, 1, 2, 3}, bySeq[1])
}

func TestRunWithMetricsIncrementsCounters(t *testing.T) {
	src, store := substitutionTree(t)
	const k = 3
	root := jsttree.Pipeline(jsttree.Root(src, store), k)

	metrics, _ := telemetry.NewMetrics()
	var hits int
	RunWithMetrics(root, matcher.NewAllWindows(k), metrics, func(Hit) { hits++ })

	assert.True(t, testutil.ToFloat64(metrics.WindowsEmitted) > 0)
	assert.Equal(t, float64(hits), testutil.ToFloat64(metrics.MatcherHits))
}

func dedupe(xs []int) []int {
	var out []int
	seen := map[int]bool{}
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}
