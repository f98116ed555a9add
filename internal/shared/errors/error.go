// Package errors defines the canonical API error body and the translation
// of every failure kind to an HTTP status. Internal exception text never
// reaches Message; when detail is useful it travels in DebugMessage.
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// FieldViolation itemizes one offending field of a rejected request.
type FieldViolation struct {
	Field         string `json:"field"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
	Message       string `json:"message"`
}

// SubError carries an object-level (cross-field) violation.
type SubError struct {
	Object  string `json:"object"`
	Message string `json:"message"`
}

// Error is the single response shape every 4xx/5xx carries.
type Error struct {
	Status           int              `json:"status"`
	Message          string           `json:"message"`
	DebugMessage     string           `json:"debugMessage,omitempty"`
	ValidationErrors []FieldViolation `json:"validationErrors,omitempty"`
	SubErrors        []SubError       `json:"subErrors,omitempty"`
}

// Error implements the error interface so handlers can pass an Error
// through regular error returns.
func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewValidation reports field-constraint failures on a request body.
func NewValidation(violations []FieldViolation, objectViolations []SubError) Error {
	return Error{
		Status:           http.StatusBadRequest,
		Message:          "Validation error",
		ValidationErrors: violations,
		SubErrors:        objectViolations,
	}
}

// NewMalformedJSON reports an unparsable request body.
func NewMalformedJSON() Error {
	return Error{Status: http.StatusBadRequest, Message: "Malformed JSON request"}
}

// NewMissingParameter reports an absent required request parameter.
func NewMissingParameter(name string) Error {
	return Error{Status: http.StatusBadRequest, Message: name + " parameter is missing"}
}

// NewTypeMismatch reports a path or query parameter that could not be
// converted to its target type. The raw conversion error is debug-only.
func NewTypeMismatch(name, value, targetType string, cause error) Error {
	e := Error{
		Status: http.StatusBadRequest,
		Message: fmt.Sprintf("The parameter '%s' of value '%s' could not be converted to type '%s'",
			name, value, targetType),
	}
	if cause != nil {
		e.DebugMessage = cause.Error()
	}
	return e
}

// NewUnsupportedMedia reports a request content type the API does not accept.
func NewUnsupportedMedia(contentType string, supported ...string) Error {
	return Error{
		Status: http.StatusUnsupportedMediaType,
		Message: fmt.Sprintf("%s media type is not supported. Supported media types are %s",
			contentType, strings.Join(supported, ", ")),
	}
}

// NewNotFound reports an absent entity using the domain-supplied message.
func NewNotFound(message string) Error {
	return Error{Status: http.StatusNotFound, Message: message}
}

// NewConflict reports a uniqueness or data-integrity violation.
func NewConflict(message string) Error {
	return Error{Status: http.StatusConflict, Message: message}
}

// NewWriteFailure reports that the response body could not be serialized.
func NewWriteFailure() Error {
	return Error{Status: http.StatusInternalServerError, Message: "Error writing JSON output"}
}

// NewInternal reports any unclassified failure with a generic message; the
// original error text is attached as debug detail only.
func NewInternal(cause error) Error {
	e := Error{Status: http.StatusInternalServerError, Message: "Unexpected error"}
	if cause != nil {
		e.DebugMessage = cause.Error()
	}
	return e
}
