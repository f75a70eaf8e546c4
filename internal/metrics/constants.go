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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Round metric names
const (
	MetricNameRoundsTotal        = "wheel_rounds_total"
	MetricNameBonusRoundsTotal   = "wheel_bonus_rounds_total"
	MetricNameAmountWagered      = "wheel_amount_wagered_total"
	MetricNameAmountPaidOut      = "wheel_amount_paid_out_total"
	MetricNameRoundNetResult     = "wheel_round_net_result"
	MetricNameBonusWinnings      = "wheel_bonus_winnings"
	MetricNamePhaseTransitions   = "wheel_phase_transitions_total"
	MetricNamePlayerBalance      = "wheel_player_balance"
	MetricNameFlavorTextFallback = "wheel_flavor_text_fallback_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Round metric help text
const (
	HelpTextRoundsTotal        = "Total number of settled rounds by winning segment label"
	HelpTextBonusRoundsTotal   = "Total number of bonus games played by kind"
	HelpTextAmountWagered      = "Total amount staked across all rounds"
	HelpTextAmountPaidOut      = "Total round winnings paid out, stakes returned included"
	HelpTextRoundNetResult     = "Distribution of the player's net result per round"
	HelpTextBonusWinnings      = "Distribution of bonus game winnings by kind"
	HelpTextPhaseTransitions   = "Total number of round phase transitions by phase entered"
	HelpTextPlayerBalance      = "Current settled player balance"
	HelpTextFlavorTextFallback = "Total number of flavor texts replaced by the static fallback"
)

// ============================================================================
// Labels
// ============================================================================

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelSegment = "segment"
	LabelKind    = "kind"
	LabelPhase   = "phase"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets are latency buckets in seconds
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

	// NetResultBuckets cover losses through large bonus wins
	NetResultBuckets = []float64{-1000, -100, -10, 0, 10, 100, 1000, 10000, 100000}

	// BonusWinningsBuckets are exponential buckets for bonus payouts
	BonusWinningsBuckets = []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 100000}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgFailedToDecodeEvent = "Failed to decode event payload for metrics"
	UnmatchedRoutePath        = "unmatched"
)
