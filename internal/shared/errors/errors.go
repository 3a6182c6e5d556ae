package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates the remote source has no such planet
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates a malformed or rejected payload
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConflict indicates the planet already exists remotely
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeMethodNotAllowed indicates an unsupported HTTP method
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	// ErrorTypeRateLimited indicates the client exceeded its request budget
	ErrorTypeRateLimited ErrorType = "rate_limited"
	// ErrorTypeExternal indicates the remote planet API could not be used
	ErrorTypeExternal ErrorType = "external"
	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "internal"
)

const internalMessage = "internal server error"

// AppError carries a client-facing message plus the underlying cause
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// WrapNotFound keeps the cause for logging while reporting not found
func WrapNotFound(message string, err error) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message, Err: err}
}

func Validation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func Validationf(format string, args ...any) error {
	return &AppError{Type: ErrorTypeValidation, Message: fmt.Sprintf(format, args...)}
}

func WrapValidation(message string, err error) error {
	return &AppError{Type: ErrorTypeValidation, Message: message, Err: err}
}

func Conflict(message string) error {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

func MethodNotAllowed(method string) error {
	return &AppError{
		Type:    ErrorTypeMethodNotAllowed,
		Message: fmt.Sprintf("method %s not allowed", method),
	}
}

func RateLimited(message string) error {
	return &AppError{Type: ErrorTypeRateLimited, Message: message}
}

func WrapExternal(message string, err error) error {
	return &AppError{Type: ErrorTypeExternal, Message: message, Err: err}
}

func WrapInternal(message string, err error) error {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// GetType returns the error type of an error, internal when untyped
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err is an AppError of the given type
func Is(err error, errorType ErrorType) bool {
	return err != nil && GetType(err) == errorType
}

// ClientMessage returns the message safe to show to callers.
// Wrapped causes and internal details are never included.
func ClientMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal && appErr.Message != "" {
		return appErr.Message
	}
	return internalMessage
}
