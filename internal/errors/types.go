package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "VALIDATION_ERROR"
	ErrorTypeUpstream          ErrorType = "UPSTREAM_ERROR"
	ErrorTypeMalformedRecipe   ErrorType = "MALFORMED_RECIPE_JSON"
	ErrorTypeStorage           ErrorType = "STORAGE_ERROR"
	ErrorTypeEmptyCandidateSet ErrorType = "EMPTY_CANDIDATE_SET"
	ErrorTypeInternal          ErrorType = "INTERNAL_ERROR"
)

// AppError represents a structured error for the application
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	// UpstreamStatus is the HTTP status returned by a remote API, 0 when the
	// call never produced a response.
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
	Provider       string `json:"provider,omitempty"`
	Err            error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error (400)
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamError reports a failed call to a remote API. status is the
// remote HTTP status, or 0 for transport failures and timeouts.
func NewUpstreamError(provider string, status int, message string, err error) *AppError {
	return &AppError{
		Type:           ErrorTypeUpstream,
		Message:        message,
		StatusCode:     http.StatusInternalServerError,
		UpstreamStatus: status,
		Provider:       provider,
		Err:            err,
	}
}

// NewMalformedRecipeError reports model output that could not be parsed into a recipe.
func NewMalformedRecipeError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeMalformedRecipe,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewStorageError wraps a persistence failure.
func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewEmptyCandidateSetError is returned when a random pick has nothing to pick from (404).
func NewEmptyCandidateSetError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyCandidateSet,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// IsType reports whether err, or anything it wraps, is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// StatusOf returns the HTTP status an error should be answered with.
// Errors that are not AppErrors map to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
