// Package metrics holds the Prometheus collectors exported by the armory
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names
const (
	LabelMode   = "mode"
	LabelResult = "result"
	LabelSlot   = "slot"
)

// Result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Allocation metrics
var (
	AllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "armory_allocations_total",
			Help: "Equipment allocations by request mode and result",
		},
		[]string{LabelMode, LabelResult},
	)

	AllocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "armory_allocation_duration_seconds",
			Help:    "Time spent allocating equipment for one hero",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{LabelMode},
	)

	EmptySlotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "armory_empty_slots_total",
			Help: "Battle slots left empty after an allocation",
		},
		[]string{LabelSlot},
	)
)

// Catalog metrics
var (
	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "armory_catalog_cache_hits_total",
			Help: "Catalog snapshot lookups served from the cache",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "armory_catalog_cache_misses_total",
			Help: "Catalog snapshot lookups that read the repository",
		},
	)
)
