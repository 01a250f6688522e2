package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	RequirementComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRequirementComputations,
			Help: HelpTextRequirementComputations,
		},
	)

	RequirementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRequirementDuration,
			Help:    HelpTextRequirementDuration,
			Buckets: ComputeLatencyBuckets,
		},
	)

	RequirementCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequirementCache,
			Help: HelpTextRequirementCache,
		},
		[]string{LabelResult},
	)

	PlanMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanMutations,
			Help: HelpTextPlanMutations,
		},
		[]string{LabelOperation},
	)

	ShoppingListLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListLines,
			Help:    HelpTextShoppingListLines,
			Buckets: ListSizeBuckets,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)
)
