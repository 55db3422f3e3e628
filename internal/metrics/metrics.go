package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Client-side market metrics
var (
	MarketRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketRequestsTotal,
			Help: HelpTextMarketRequestsTotal,
		},
		[]string{LabelVerb, LabelOutcome},
	)

	MarketRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameMarketRequestDuration,
			Help:    HelpTextMarketRequestDuration,
			Buckets: RequestLatencyBuckets,
		},
		[]string{LabelVerb},
	)

	SnapshotsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsApplied,
			Help: HelpTextSnapshotsApplied,
		},
		[]string{LabelKind},
	)

	SnapshotsDeduped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsDeduped,
			Help: HelpTextSnapshotsDeduped,
		},
	)

	NotificationsPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsPushed,
			Help: HelpTextNotificationsPushed,
		},
		[]string{LabelKind},
	)
)

// Authority HTTP metrics
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
			Buckets: RequestLatencyBuckets,
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
