package errs

import (
	"errors"
	"fmt"
)

// Machine-readable error codes surfaced to API clients.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "RESOURCE_NOT_FOUND"
	CodeConflict   = "CONFLICT"
)

// DomainError is the single error type crossing out of the domain and
// application layers. Use cases never wrap it; the HTTP layer maps Code
// to a status (400 / 404 / 409).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Validation signals a business-rule violation: wrong aggregate state,
// bad credentials, rate limiting, malformed value-object input.
func Validation(msg string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: msg}
}

func Validationf(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound signals that a lookup by ID, token, or email did not resolve.
func NotFound(resource, identifier string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with identifier %s not found", resource, identifier),
	}
}

// Conflict signals a uniqueness violation, e.g. a duplicate email.
func Conflict(msg string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: msg}
}

func Conflictf(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func codeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func IsValidation(err error) bool { return codeOf(err) == CodeValidation }
func IsNotFound(err error) bool   { return codeOf(err) == CodeNotFound }
func IsConflict(err error) bool   { return codeOf(err) == CodeConflict }
