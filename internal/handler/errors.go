package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Path parameter error messages
	ErrMsgMissingDefindex  = "Missing defindex"
	ErrMsgInvalidDefindex  = "Invalid defindex"
	ErrMsgMissingAttribute = "Missing attribute id or name"
	ErrMsgMissingSteamID   = "Missing steamid"

	// Pagination error messages
	ErrMsgInvalidStart = "Invalid start parameter"
	ErrMsgInvalidCount = "Invalid count parameter"

	// Operation error messages
	ErrMsgGetItemFailed       = "Failed to get item"
	ErrMsgListItemsFailed     = "Failed to list items"
	ErrMsgGetAttributeFailed  = "Failed to get attribute"
	ErrMsgListQualitiesFailed = "Failed to list qualities"
	ErrMsgListOriginsFailed   = "Failed to list origins"
	ErrMsgRefreshFailed       = "Failed to refresh schema"
	ErrMsgGetBackpackFailed   = "Failed to get backpack"
)

// Success messages for API responses
const (
	MsgSchemaRefreshedSuccess = "Schema refreshed successfully"
	MsgCacheInvalidated       = "Cache invalidated successfully"
)
