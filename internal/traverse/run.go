package traverse

import (
	"github.com/jjtimmons/jst/internal/jsttree"
	"github.com/jjtimmons/jst/internal/matcher"
	"github.com/jjtimmons/jst/internal/telemetry"
)

// Hit is a single matcher hit resolved to one covered sequence's own
// coordinate.
type Hit struct {
	// Sequence is the bit index of the covered sequence, i.e. its
	// index in the original domain.
	Sequence int
	// Position is the absolute offset of the match's start in that
	// sequence's derived coordinate space.
	Position int
}

// Run drives a Traverser over root, invoking m on every emitted cargo
// and reporting one Hit per (match, covered sequence) pair — the
// pattern pigeonhole_filter.hpp uses: construct the matcher once per
// search run, invoke it per cargo, and for every finder resolve the
// absolute derived coordinate by translating through the cargo's own
// labelling and then fanning out across its coverage bitmap.
func Run(root jsttree.Cursor, m matcher.Matcher, report func(Hit)) {
	RunWithMetrics(root, m, nil, report)
}

// RunWithMetrics is Run plus optional counters: metrics may be nil, in
// which case it behaves exactly like Run. `jst search --metrics-addr`
// passes a live Metrics so a scrape mid-run sees progress.
func RunWithMetrics(root jsttree.Cursor, m matcher.Matcher, metrics *telemetry.Metrics, report func(Hit)) {
	t := New(root)
	for t.Next() {
		cargo := t.Cargo()
		if metrics != nil {
			if n := len(cargo.Seq) - m.WindowSize() + 1; n > 0 {
				metrics.WindowsEmitted.Add(float64(n))
			}
		}
		m.Scan(cargo.Seq, func(f matcher.Finder) {
			absolute := cargo.DerivedLo + f.Position() - cargo.ContextLen
			domain := cargo.Cov.Domain()
			for i := 0; i < domain; i++ {
				if cargo.Cov.Test(i) {
					if metrics != nil {
						metrics.MatcherHits.Inc()
					}
					report(Hit{Sequence: i, Position: absolute})
				}
			}
		})
	}
}
