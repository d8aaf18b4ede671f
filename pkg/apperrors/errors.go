// Package apperrors defines the error taxonomy shared by the models, codec,
// and client packages. Local errors (schema validation, malformed documents,
// failed preconditions) are raised before any network call; remote errors
// carry the HTTP status and message returned by the workspace API.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying remote API failures with errors.Is.
var (
	ErrNotFound       = errors.New("space not found")
	ErrAuthentication = errors.New("authentication failed")
)

// SchemaValidationError reports a malformed field value detected at model
// construction or during decode. It never reaches the network.
type SchemaValidationError struct {
	Field   string
	Message string
}

func (e *SchemaValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema validation: %s", e.Message)
	}
	return fmt.Sprintf("schema validation: %s: %s", e.Field, e.Message)
}

// NewSchemaValidationError creates a SchemaValidationError for a field.
func NewSchemaValidationError(field, message string) *SchemaValidationError {
	return &SchemaValidationError{Field: field, Message: message}
}

// MalformedExportError reports structurally invalid JSON encountered while
// decoding a space export document. Path identifies the offending field when
// known (e.g. "data_sources.tables").
type MalformedExportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *MalformedExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed export: %s", e.Message)
	}
	return fmt.Sprintf("malformed export: %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *MalformedExportError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a failed precondition before a remote call is
// attempted (e.g. an update with no fields to send). No request is issued.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// SpaceClientError wraps a non-success response from the workspace API.
// It unwraps to ErrNotFound or ErrAuthentication for the statuses that have
// a dedicated classification.
type SpaceClientError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *SpaceClientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("space API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("space API error: %s", e.Message)
}

// Unwrap returns the sentinel classification, if any.
func (e *SpaceClientError) Unwrap() error {
	return e.kind
}

// NewSpaceClientError creates a generic remote API error.
func NewSpaceClientError(statusCode int, message string) *SpaceClientError {
	return &SpaceClientError{StatusCode: statusCode, Message: message}
}

// NewNotFoundError creates a remote error that matches ErrNotFound.
func NewNotFoundError(statusCode int, message string) *SpaceClientError {
	return &SpaceClientError{StatusCode: statusCode, Message: message, kind: ErrNotFound}
}

// NewAuthenticationError creates a remote error that matches ErrAuthentication.
func NewAuthenticationError(statusCode int, message string) *SpaceClientError {
	return &SpaceClientError{StatusCode: statusCode, Message: message, kind: ErrAuthentication}
}
