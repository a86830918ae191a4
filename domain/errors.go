package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeInvalid    ErrorCode = "INVALID"
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	ErrCodeInternal   ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation failures reported by the task store.
var (
	ErrTitleRequired      = NewError(ErrCodeInvalid, "title must not be empty")
	ErrTitleTooLong       = NewError(ErrCodeInvalid, fmt.Sprintf("title must be at most %d characters", MaxTitleLength))
	ErrDescriptionTooLong = NewError(ErrCodeInvalid, fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength))
	ErrInvalidDateFormat  = NewError(ErrCodeInvalid, "invalid date format, use "+MomentLayout)
	ErrDueBeforeStart     = NewError(ErrCodeInvalid, "due time cannot be earlier than start time")
)

// Common domain errors.
var (
	ErrIndexOutOfRange = NewError(ErrCodeOutOfRange, "index out of range")
	ErrTaskNotFound    = NewError(ErrCodeNotFound, "task not found")
	ErrInvalidPayload  = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
