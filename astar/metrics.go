// SPDX-License-Identifier: MIT
package astar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchRuns counts finished searches by terminal status.
	searchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_runs_total",
		Help: "Total finished A* searches by status",
	}, []string{"status"})

	// searchExpanded tracks how many cells each search popped.
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_cells",
		Help:    "Cells expanded per A* search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})

	// searchDuration tracks wall time per search, hooks included.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "A* search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})
)

func observe(r Result) {
	searchRuns.WithLabelValues(r.Status.String()).Inc()
	searchExpanded.Observe(float64(r.Expanded))
	searchDuration.Observe(r.Elapsed.Seconds())
}
