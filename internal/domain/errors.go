package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// RemoteAPIError is returned when the broker rejects a request or cannot be reached.
// StatusCode is 0 when no HTTP response was received.
type RemoteAPIError struct {
	StatusCode int
	Message    string              // Broker "Message"
	ErrorCode  string              // Broker "ErrorCode" (e.g. "InvalidModelState")
	ModelState map[string][]string // Broker per-field validation messages
	Body       string              // Raw response body, complete
	URL        string
	Err        error // Transport error when StatusCode is 0
}

func (e *RemoteAPIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("broker request to %s failed: %v", e.URL, e.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "broker API error: status %d", e.StatusCode)
	if e.ErrorCode != "" {
		fmt.Fprintf(&b, " (%s)", e.ErrorCode)
	}
	switch {
	case e.Message != "":
		fmt.Fprintf(&b, ": %s", e.Message)
	case e.Body != "":
		fmt.Fprintf(&b, ", body: %s", e.Body)
	}
	return b.String()
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// MalformedPositionError means an option-flagged position is missing its option detail,
// or a non-option position was handed to code that needs one.
type MalformedPositionError struct {
	PositionID string
	AssetType  AssetType
	Reason     string
}

func (e *MalformedPositionError) Error() string {
	return fmt.Sprintf("malformed position %s (asset type %s): %s", e.PositionID, e.AssetType, e.Reason)
}

// CancelledError is returned when the caller's context ends before the broker answered
type CancelledError struct {
	Err error // context.Canceled or context.DeadlineExceeded
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("operation cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// DeadlineExceeded reports whether the cancellation came from a deadline rather than an explicit cancel
func (e *CancelledError) DeadlineExceeded() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}
