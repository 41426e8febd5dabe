// ABOUTME: Error taxonomy for status lookups: invalid address, HTTP, timeout, connection
// ABOUTME: Sentinels match with errors.Is; typed errors carry detail for errors.As

package status

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned for addresses that fail ValidateAddress.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrTimeout is returned when a lookup exceeds its deadline.
	ErrTimeout = errors.New("status request timed out")
)

// HTTPError reports a non-2xx response from the status API.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error: %d", e.StatusCode)
}

// ConnectionError wraps any other failure talking to the status API.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
