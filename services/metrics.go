// services/metrics.go
package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes.
const (
	outcomeFound    = "found"
	outcomeNoPath   = "no_path"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

var (
	pathSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightpath",
		Name:      "path_search_total",
		Help:      "Total path searches by outcome",
	}, []string{"outcome"})

	pathSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "flightpath",
		Name:      "path_search_duration_seconds",
		Help:      "Duration of path searches",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})

	pathSearchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "flightpath",
		Name:      "path_search_expanded_cities",
		Help:      "Cities expanded per search",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})

	graphSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "flightpath",
		Name:      "graph_size",
		Help:      "Size of the loaded route graph",
	}, []string{"kind"})
)
