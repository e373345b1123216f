// Package errors carries a numeric ErrorCode on every failure the engine
// reports, so callers can branch on the kind of failure without matching
// message text.
//
// Codes are grouped by hundreds: general (1-99), validation (100-199),
// series access (200-299), indicator registry (300-399), configuration
// (400-499) and bar feeds (700-799).
//
//	err := errors.Newf(errors.ErrCodeIndexOutOfRange, "index %d out of range [0, %d)", index, length)
//	if errors.HasCode(err, errors.ErrCodeIndexOutOfRange) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is a coded failure with an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to cause. Unwrap returns cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// Error renders "[code] message" followed by ": cause" when there is one.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%d] %s", e.Code, e.Message)
	if e.Cause == nil {
		return msg
	}

	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets callers test sentinels without a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// CodeOf returns the code of the outermost *Error in err's chain, or
// ErrCodeUnknown when there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode reports whether err carries code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
