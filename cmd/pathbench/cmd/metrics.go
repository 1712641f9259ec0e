package cmd

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queryDuration tracks wall-clock query time per strategy, matching the
// counters/histograms shape the rest of the pack's services use for
// request-handling metrics.
var queryDuration = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Namespace:  "pathbench",
		Name:       "query_duration_seconds",
		Help:       "Wall-clock duration of a single pathbench query, by strategy.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"variant"},
)

// runTimer starts a wall-clock timer for the named strategy; call the
// returned function once the query result is in hand.
func runTimer(variant string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		queryDuration.WithLabelValues(variant).Observe(d.Seconds())
		return d
	}
}
