package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found"

	// Upstream messages
	ErrMsgUpstreamError       = "Steam WebAPI is unavailable. Please try again later."
	ErrMsgSchemaStatusError   = "Steam returned an unusable item schema"
	ErrMsgBackpackStatusError = "Steam returned an unusable backpack"
	ErrMsgItemUnresolvableErr = "Steam returned an item the schema cannot describe"
	ErrMsgAttributeUnknownErr = "Steam returned an attribute the schema cannot describe"

	// Player messages
	ErrMsgPlayerIdentityError  = "Could not resolve that player"
	ErrMsgBackpackPrivateError = "That backpack is private"
	ErrMsgUnknownFieldError    = "Unknown field requested"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Order matters: refinements of the backpack status error are checked
	// before the broad status sentinels they wrap.
	switch {
	case errors.Is(err, domain.ErrBackpackPrivate):
		return http.StatusForbidden, ErrMsgBackpackPrivateError
	case errors.Is(err, domain.ErrPlayerIdentity):
		return http.StatusBadRequest, ErrMsgPlayerIdentityError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnknownField):
		return http.StatusBadRequest, ErrMsgUnknownFieldError
	case errors.Is(err, domain.ErrSchemaStatus):
		return http.StatusBadGateway, ErrMsgSchemaStatusError
	case errors.Is(err, domain.ErrBackpackStatus):
		return http.StatusBadGateway, ErrMsgBackpackStatusError
	case errors.Is(err, domain.ErrItemNotResolvable):
		return http.StatusBadGateway, ErrMsgItemUnresolvableErr
	case errors.Is(err, domain.ErrAttributeUnknown):
		return http.StatusBadGateway, ErrMsgAttributeUnknownErr
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, ErrMsgUpstreamError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
