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

// Steam WebAPI Metrics
var (
	SteamAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSteamAPIRequestsTotal,
			Help: HelpTextSteamAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	SteamAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSteamAPIRequestDuration,
			Help:    HelpTextSteamAPIRequestDuration,
			Buckets: SteamAPILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Business Metrics
var (
	SchemaFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSchemaFetches,
			Help: HelpTextSchemaFetches,
		},
		[]string{LabelLanguage, LabelResult},
	)

	SchemaCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSchemaCache,
			Help: HelpTextSchemaCache,
		},
		[]string{LabelResult},
	)

	BackpackLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackpackLoads,
			Help: HelpTextBackpackLoads,
		},
		[]string{LabelResult},
	)

	BackpackSlots = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBackpackSlots,
			Help:    HelpTextBackpackSlots,
			Buckets: BackpackSlotBuckets,
		},
	)

	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand, LabelResult},
	)
)
