package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Market metric names
const (
	MetricNameMarketRequestsTotal   = "market_requests_total"
	MetricNameMarketRequestDuration = "market_request_duration_seconds"
	MetricNameSnapshotsApplied      = "snapshots_applied_total"
	MetricNameSnapshotsDeduped      = "snapshots_deduped_total"
	MetricNameNotificationsPushed   = "notifications_pushed_total"
)

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextMarketRequestsTotal   = "Total number of market commands sent to the authority"
	HelpTextMarketRequestDuration = "Market command round-trip latency in seconds"
	HelpTextSnapshotsApplied      = "Total number of authority snapshots applied"
	HelpTextSnapshotsDeduped      = "Total number of duplicate snapshot events dropped"
	HelpTextNotificationsPushed   = "Total number of notifications pushed to the user"

	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelVerb    = "verb"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

// RequestLatencyBuckets covers the expected authority round-trip range.
var RequestLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
