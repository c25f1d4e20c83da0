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

// Steam WebAPI metric names
const (
	MetricNameSteamAPIRequestsTotal   = "steam_api_requests_total"
	MetricNameSteamAPIRequestDuration = "steam_api_request_duration_seconds"
)

// Business metric names
const (
	MetricNameSchemaFetches   = "schema_fetches_total"
	MetricNameSchemaCache     = "schema_cache_total"
	MetricNameBackpackLoads   = "backpack_loads_total"
	MetricNameBackpackSlots   = "backpack_slots"
	MetricNameDiscordCommands = "discord_commands_total"
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

// Steam WebAPI metric help text
const (
	HelpTextSteamAPIRequestsTotal   = "Total number of Steam WebAPI requests"
	HelpTextSteamAPIRequestDuration = "Steam WebAPI request latency in seconds"
)

// Business metric help text
const (
	HelpTextSchemaFetches   = "Total number of item schema fetches"
	HelpTextSchemaCache     = "Total number of schema cache lookups"
	HelpTextBackpackLoads   = "Total number of backpack loads"
	HelpTextBackpackSlots   = "Backpack slot counts seen per load"
	HelpTextDiscordCommands = "Total number of Discord commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelLanguage = "language"
	LabelResult   = "result"
	LabelCommand  = "command"
)

// Common values for the result label
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SteamAPILatencyBuckets stretches further than the HTTP buckets because
// a cold GetSchema download routinely takes seconds
var SteamAPILatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

// BackpackSlotBuckets covers the slot counts a backpack can report, from
// the stock 50 up to fully expanded
var BackpackSlotBuckets = []float64{50, 100, 300, 500, 1000, 2000, 3000, 4000}
