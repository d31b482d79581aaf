package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// User errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "User not found")
	ErrEmailExists        = NewDomainError("EMAIL_EXISTS", "User with this email already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

	// Authentication errors
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "Not authorized to access this route")
	ErrInvalidToken = NewDomainError("INVALID_TOKEN", "Invalid or expired token")
	ErrForbidden    = NewDomainError("FORBIDDEN", "Access denied. Insufficient permissions")

	// Validation errors
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input")
	ErrMentorExpertise   = NewDomainError("MENTOR_EXPERTISE", "Mentors must have at least one area of expertise")
	ErrPasswordMismatch  = NewDomainError("PASSWORD_MISMATCH", "Password confirmation does not match")
	ErrIncorrectPassword = NewDomainError("INCORRECT_PASSWORD", "Current password is incorrect")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "Internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

// domainErrorToHTTPStatus maps specific domain errors to HTTP status codes
func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request. Duplicate email is reported as 400 to match the
	// public API contract rather than 409.
	case "INVALID_INPUT", "MENTOR_EXPERTISE", "PASSWORD_MISMATCH",
		"INCORRECT_PASSWORD", "EMAIL_EXISTS":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND":
		return http.StatusNotFound

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts the caller-facing error message. Internal
// detail wrapped inside a domain error is never exposed.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
