package webapi

import "time"

// DefaultBaseURL is the public Steam WebAPI host.
const DefaultBaseURL = "https://api.steampowered.com"

// Interface paths, versioned the way the WebAPI versions them. The
// economy paths take the numeric app ID.
const (
	pathGetSchema        = "/IEconItems_%d/GetSchema/v0001/"
	pathGetPlayerItems   = "/IEconItems_%d/GetPlayerItems/v0001/"
	pathResolveVanityURL = "/ISteamUser/ResolveVanityURL/v0001/"
)

// Endpoint names used as metric labels
const (
	EndpointGetSchema        = "GetSchema"
	EndpointGetPlayerItems   = "GetPlayerItems"
	EndpointResolveVanityURL = "ResolveVanityURL"
)

// Query parameter names
const (
	paramKey       = "key"
	paramLanguage  = "language"
	paramSteamID   = "steamid"
	paramVanityURL = "vanityurl"
)

// ResolveVanityURL success codes
const (
	vanitySuccessOK      = 1
	vanitySuccessNoMatch = 42
)

// Default retry configuration
const (
	defaultMaxRetries   = 3
	defaultRetryDelay   = 500 * time.Millisecond
	defaultHTTPTimeout  = 10 * time.Second
	retryJitterModuloMS = 100
)

// The WebAPI serializes NaN attribute values as this literal, which no
// JSON decoder accepts. Scrubbed to zero before decoding.
var (
	qnanToken       = []byte(`"-1.#QNAN0"`)
	qnanReplacement = []byte(`"0"`)
)
