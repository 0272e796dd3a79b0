// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus series exported on /metrics.
//
// Series are registered on the default registry at init, so importing the
// package is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taibuivan/itinera/internal/platform/constants"
)

// Planner metrics.
var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "planner_search_duration_seconds",
			Help:      "Duration of exhaustive package searches",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"}, // "ok" / "cancelled"
	)

	SearchNodes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "planner_search_nodes",
			Help:      "Decision tree nodes visited per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 14),
		},
	)

	SearchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "planner_search_candidates",
			Help:      "Candidate tours per search",
			Buckets:   []float64{0, 1, 2, 4, 8, 12, 16, 20, 24, 32, 40},
		},
	)

	PackageCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "planner_package_cache_total",
			Help:      "Package cache lookups",
		},
		[]string{"result"}, // "hit" / "miss" / "error"
	)
)

// Catalog metrics.
var (
	CatalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "catalog_loads_total",
			Help:      "Catalog build attempts",
		},
		[]string{"status"}, // "ok" / "failed"
	)

	CatalogEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "catalog_entities",
			Help:      "Entities in the active catalog snapshot",
		},
		[]string{"kind"}, // "regions" / "tours" / "attractions" / "edges"
	)
)

func init() {
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchNodes)
	prometheus.MustRegister(SearchCandidates)
	prometheus.MustRegister(PackageCache)
	prometheus.MustRegister(CatalogLoads)
	prometheus.MustRegister(CatalogEntities)
}
