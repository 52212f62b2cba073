package client

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotLoggedIn is returned by session-requiring operations invoked
// before the session context is established. No network I/O happens first.
var ErrNotLoggedIn = errors.New("market: login required, session context not established")

// RateLimitedError signals the marketplace's too-many-requests response on
// a read endpoint. It carries the documented quota so callers can size
// their backoff; this client performs none itself.
type RateLimitedError struct {
	Limit  int
	Window time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("market: rate limited, quota is %d requests per %s", e.Limit, e.Window)
}

// APIError covers a non-success HTTP status, a malformed response body, or
// a transport failure. Exactly one of Status and cause is typically set.
type APIError struct {
	Status  int    // HTTP status, 0 when the failure was not status-driven
	Message string // marketplace message or local diagnosis
	cause   error
}

func (e *APIError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("market: %s (HTTP %d)", e.Message, e.Status)
	case e.cause != nil:
		return fmt.Sprintf("market: %s: %v", e.Message, e.cause)
	default:
		return "market: " + e.Message
	}
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func newStatusError(op string, status int) *APIError {
	return &APIError{Status: status, Message: op + " failed"}
}

func wrapAPIError(err error, message string) *APIError {
	return &APIError{Message: message, cause: err}
}

// OrderRejectedError means the request reached the marketplace, was
// evaluated, and declined: the success indicator was a syntactically valid
// non-canonical value. A wallet currency mismatch is the common cause.
type OrderRejectedError struct {
	Indicator int
	Message   string
}

func (e *OrderRejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("market: order rejected with success=%d: %s", e.Indicator, e.Message)
	}
	return fmt.Sprintf("market: order rejected with success=%d (is the request currency the wallet currency?)", e.Indicator)
}

// ConfirmationError means the confirmation step returned structurally
// invalid data, as opposed to a transport failure during the same step
// (which surfaces as an APIError wrapping the cause).
type ConfirmationError struct {
	Reason string
}

func (e *ConfirmationError) Error() string {
	return "market: " + e.Reason
}
