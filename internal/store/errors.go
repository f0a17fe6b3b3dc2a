package store

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrorCode classifies backend failures.
type ErrorCode string

const (
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeRateLimited ErrorCode = "RATE_LIMITED"
	CodeUnavailable ErrorCode = "UNAVAILABLE"
	CodeInvalid     ErrorCode = "INVALID_REQUEST"
	CodeUnknown     ErrorCode = "UNKNOWN"
)

// Error is a structured error for spreadsheet backend failures.
type Error struct {
	Code      ErrorCode
	Op        string // e.g. "values.append"
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrNotFound) match backend 404s.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Code == CodeNotFound
}

// IsRetryable returns whether this error is worth retrying.
func (e *Error) IsRetryable() bool {
	return e.Retryable
}

// classify wraps a Google API error into an *Error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return &Error{Code: CodeUnknown, Op: op, Retryable: false, Cause: err}
	}
	switch {
	case apiErr.Code == http.StatusNotFound:
		return &Error{Code: CodeNotFound, Op: op, Cause: err}
	case apiErr.Code == http.StatusTooManyRequests:
		return &Error{Code: CodeRateLimited, Op: op, Retryable: true, Cause: err}
	case apiErr.Code >= 500:
		return &Error{Code: CodeUnavailable, Op: op, Retryable: true, Cause: err}
	case apiErr.Code >= 400:
		return &Error{Code: CodeInvalid, Op: op, Cause: err}
	default:
		return &Error{Code: CodeUnknown, Op: op, Cause: err}
	}
}
