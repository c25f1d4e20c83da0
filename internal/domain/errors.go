package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Schema errors
	ErrMsgSchemaStatus      = "schema fetch failed"
	ErrMsgItemNotResolvable = "item has no corresponding schema entry"
	ErrMsgAttributeUnknown  = "attribute has no schema definition"

	// Item field errors
	ErrMsgUnknownField = "unknown item field"

	// Lookup errors
	ErrMsgNotFound = "not found"

	// Backpack errors
	ErrMsgBackpackStatus  = "backpack fetch failed"
	ErrMsgPlayerIdentity  = "bad player identity"
	ErrMsgBackpackPrivate = "backpack is private"

	// Upstream errors
	ErrMsgUpstream = "steam api request failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Schema errors
	ErrSchemaStatus      = errors.New(ErrMsgSchemaStatus)
	ErrItemNotResolvable = errors.New(ErrMsgItemNotResolvable)
	ErrAttributeUnknown  = errors.New(ErrMsgAttributeUnknown)

	// Item field errors
	ErrUnknownField = errors.New(ErrMsgUnknownField)

	// Lookup errors
	ErrNotFound = errors.New(ErrMsgNotFound)

	// Backpack errors
	ErrBackpackStatus  = errors.New(ErrMsgBackpackStatus)
	ErrPlayerIdentity  = errors.New(ErrMsgPlayerIdentity)
	ErrBackpackPrivate = errors.New(ErrMsgBackpackPrivate)

	// Upstream errors
	ErrUpstream = errors.New(ErrMsgUpstream)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// SchemaStatusError reports a schema payload whose status field was not
// the success code. It carries the status the upstream returned.
type SchemaStatusError struct {
	Status int
}

func (e *SchemaStatusError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrMsgSchemaStatus, e.Status)
}

func (e *SchemaStatusError) Unwrap() error { return ErrSchemaStatus }

// BackpackStatusError reports an inventory payload whose status field
// was not the success code. Status 8 means the player identity was
// rejected, status 15 means the backpack is private.
type BackpackStatusError struct {
	Status int
}

func (e *BackpackStatusError) Error() string {
	switch e.Status {
	case BackpackStatusBadIdentity:
		return fmt.Sprintf("%s: status %d", ErrMsgPlayerIdentity, e.Status)
	case BackpackStatusPrivate:
		return fmt.Sprintf("%s: status %d", ErrMsgBackpackPrivate, e.Status)
	default:
		return fmt.Sprintf("%s: status %d", ErrMsgBackpackStatus, e.Status)
	}
}

func (e *BackpackStatusError) Unwrap() []error {
	errs := []error{ErrBackpackStatus}
	switch e.Status {
	case BackpackStatusBadIdentity:
		errs = append(errs, ErrPlayerIdentity)
	case BackpackStatusPrivate:
		errs = append(errs, ErrBackpackPrivate)
	}
	return errs
}
