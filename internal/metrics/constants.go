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

// Planner metric names
const (
	MetricNameRequirementComputations = "requirement_computations_total"
	MetricNameRequirementDuration     = "requirement_computation_duration_seconds"
	MetricNameRequirementCache        = "requirement_cache_lookups_total"
	MetricNamePlanMutations           = "plan_mutations_total"
	MetricNameShoppingListLines       = "shopping_list_lines"
	MetricNameSearchesPerformed       = "catalog_searches_total"
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

// Planner metric help text
const (
	HelpTextRequirementComputations = "Total number of requirement aggregations run"
	HelpTextRequirementDuration     = "Time spent aggregating a plan into requirements"
	HelpTextRequirementCache        = "Requirement cache lookups by result"
	HelpTextPlanMutations           = "Total number of plan and favorite changes by operation"
	HelpTextShoppingListLines       = "Number of lines in built shopping lists"
	HelpTextSearchesPerformed       = "Total number of catalog searches performed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelOperation = "operation"
)

// Label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	OperationAddItem        = "add_item"
	OperationSetQuantity    = "set_quantity"
	OperationRemoveItem     = "remove_item"
	OperationAddFavorite    = "add_favorite"
	OperationRemoveFavorite = "remove_favorite"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ComputeLatencyBuckets covers in-process aggregation, from 10µs to 100ms
var ComputeLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ListSizeBuckets covers shopping list lengths
var ListSizeBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250}
