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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Round Metrics
var (
	RoundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsTotal,
			Help: HelpTextRoundsTotal,
		},
		[]string{LabelSegment},
	)

	BonusRoundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusRoundsTotal,
			Help: HelpTextBonusRoundsTotal,
		},
		[]string{LabelKind},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
	)

	RoundNetResult = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRoundNetResult,
			Help:    HelpTextRoundNetResult,
			Buckets: NetResultBuckets,
		},
	)

	BonusWinnings = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBonusWinnings,
			Help:    HelpTextBonusWinnings,
			Buckets: BonusWinningsBuckets,
		},
		[]string{LabelKind},
	)

	PhaseTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePhaseTransitions,
			Help: HelpTextPhaseTransitions,
		},
		[]string{LabelPhase},
	)

	PlayerBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerBalance,
			Help: HelpTextPlayerBalance,
		},
	)

	FlavorTextFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFlavorTextFallback,
			Help: HelpTextFlavorTextFallback,
		},
	)
)
