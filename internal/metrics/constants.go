package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Store metric names
const (
	MetricNameStoreOperations = "playerlevels_store_operations_total"
	MetricNameCacheLookups    = "playerlevels_cache_lookups_total"
	MetricNameCachedPlayers   = "playerlevels_cached_players"
)

// Leveling metric names
const (
	MetricNameStatisticLookupFailures = "playerlevels_statistic_lookup_failures_total"
	MetricNameRecomputeDuration       = "playerlevels_recompute_duration_seconds"
	MetricNameRecomputedPlayers       = "playerlevels_recomputed_players_total"
	MetricNameRewardsDispatched       = "playerlevels_rewards_dispatched_total"
	MetricNameCommandsExecuted        = "playerlevels_commands_executed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Store metric help text
const (
	HelpTextStoreOperations = "Player store operations against persistent storage by result"
	HelpTextCacheLookups    = "Player cache lookups by result"
	HelpTextCachedPlayers   = "Number of player records held in the cache"
)

// Leveling metric help text
const (
	HelpTextStatisticLookupFailures = "Statistic lookups that failed and contributed zero experience"
	HelpTextRecomputeDuration       = "Duration of a full recompute pass over online players"
	HelpTextRecomputedPlayers       = "Players whose experience was recomputed"
	HelpTextRewardsDispatched       = "Reward rules fired by explicit level assignment"
	HelpTextCommandsExecuted        = "Plugin commands executed by command name"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelStatistic = "statistic"
	LabelLevel     = "level"
	LabelCommand   = "command"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets for request latency (in seconds)
	HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

	// RecomputeBuckets for full recompute passes (in seconds)
	RecomputeBuckets = []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60}
)
