// Package errors provides structured errors with codes and metadata.
//
// Flow outcomes that callers branch on (timeouts of user waits, explicit
// cancellation) are modeled as coded errors so orchestrator logic can switch
// on the IsX predicates instead of sentinel comparisons.
package errors

import (
	"errors"
	"fmt"
)

// Error is a coded error with an optional cause and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta attaches a metadata entry to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error, preserving its code if it carries one
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Cause:   err,
			Meta:    existing.Meta,
		}
	}

	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error under a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// Canceled creates a CANCELED error
func Canceled(message string) *Error {
	return New(CodeCanceled, message)
}

// Canceledf creates a CANCELED error with a formatted message
func Canceledf(format string, args ...any) *Error {
	return Newf(CodeCanceled, format, args...)
}

// InvalidArgument creates an INVALID_ARGUMENT error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an INVALID_ARGUMENT error with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// DeadlineExceeded creates a DEADLINE_EXCEEDED error
func DeadlineExceeded(message string) *Error {
	return New(CodeDeadlineExceeded, message)
}

// DeadlineExceededf creates a DEADLINE_EXCEEDED error with a formatted message
func DeadlineExceededf(format string, args ...any) *Error {
	return Newf(CodeDeadlineExceeded, format, args...)
}

// NotFound creates a NOT_FOUND error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a NOT_FOUND error with a formatted message
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// PermissionDenied creates a PERMISSION_DENIED error
func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

// PermissionDeniedf creates a PERMISSION_DENIED error with a formatted message
func PermissionDeniedf(format string, args ...any) *Error {
	return Newf(CodePermissionDenied, format, args...)
}

// FailedPrecondition creates a FAILED_PRECONDITION error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf creates a FAILED_PRECONDITION error with a formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Unavailable creates an UNAVAILABLE error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Internal creates an INTERNAL error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an INTERNAL error with a formatted message
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}
