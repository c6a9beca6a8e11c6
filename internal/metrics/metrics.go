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

// Store Metrics
var (
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreOperations,
			Help: HelpTextStoreOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelResult},
	)

	CachedPlayers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCachedPlayers,
			Help: HelpTextCachedPlayers,
		},
	)
)

// Leveling Metrics
var (
	StatisticLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatisticLookupFailures,
			Help: HelpTextStatisticLookupFailures,
		},
		[]string{LabelStatistic},
	)

	RecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecomputeDuration,
			Help:    HelpTextRecomputeDuration,
			Buckets: RecomputeBuckets,
		},
	)

	RecomputedPlayers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecomputedPlayers,
			Help: HelpTextRecomputedPlayers,
		},
	)

	RewardsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDispatched,
			Help: HelpTextRewardsDispatched,
		},
		[]string{LabelLevel},
	)

	CommandsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsExecuted,
			Help: HelpTextCommandsExecuted,
		},
		[]string{LabelCommand},
	)
)

// RecordStoreOperation counts one storage call by outcome
func RecordStoreOperation(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	StoreOperations.WithLabelValues(operation, result).Inc()
}

// RecordCacheLookup counts one cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues(ResultHit).Inc()
		return
	}
	CacheLookups.WithLabelValues(ResultMiss).Inc()
}
