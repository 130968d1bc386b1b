// Package httperr defines the error taxonomy shared by the app services
// and the HTTP layer: validation failures carrying field-level issues, and
// owner-scoped not-found.
package httperr

import (
	"errors"
	"net/http"

	"cricket-scoring-service/internal/domain/match"
)

// ValidationError is a 400: one or more field-level problems.
type ValidationError struct {
	Issues  []match.Issue
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Issues) > 0 {
		return e.Issues[0].Msg
	}
	return "validation failed"
}

// NewValidation wraps a list of issues in a ValidationError.
func NewValidation(issues ...match.Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// NewValidationMsg builds a ValidationError from a bare message, for
// state-guard violations that are not tied to one field.
func NewValidationMsg(msg string) *ValidationError {
	return &ValidationError{
		Issues:  []match.Issue{{Msg: msg}},
		Message: msg,
	}
}

// NotFoundError is a 404: the resource does not exist for this owner.
// Whether it exists for someone else is deliberately not distinguished.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "not found"
}

// NewNotFound builds a NotFoundError with the given user-facing message.
func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// IssuesOf extracts the field issues from a validation error, or nil.
func IssuesOf(err error) []match.Issue {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Issues
	}
	return nil
}
