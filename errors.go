package contentfilter

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// The filter itself is total over UTF-8 input and has no failure modes.
// All errors below belong to the word-list store side: loading, reloading,
// and validating externally supplied dictionaries.

// Common errors
var (
	ErrStoreNotConfigured = errors.New("contentfilter: word-list store not configured")
	ErrEmptyWordlist      = errors.New("contentfilter: store returned an empty word list")
	ErrWordlistTooLarge   = errors.New("contentfilter: word list exceeds size limit")
	ErrUnknownList        = errors.New("contentfilter: unknown word list name")
	ErrReloaderClosed     = errors.New("contentfilter: reloader already stopped")
	ErrTimeout            = errors.New("contentfilter: operation timeout")

	// Network errors surfaced by SQL/Redis stores
	ErrNetworkUnreachable = errors.New("contentfilter: network unreachable")
	ErrConnectionRefused  = errors.New("contentfilter: connection refused")
)

// StoreError represents a word-list store failure.
type StoreError struct {
	Operation string // Operation that failed (load, ping)
	Backend   string // Backend name (sql, redis, memory)
	Err       error  // Underlying error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("contentfilter: store error during %s on %s: %v", e.Operation, e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error.
func NewStoreError(operation, backend string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Backend:   backend,
		Err:       err,
	}
}

// IsStoreError checks if an error is a store error.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// IsRetryable checks if a store error is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetworkUnreachable) ||
		errors.Is(err, ErrConnectionRefused) {
		return true
	}

	// Empty or oversized word lists are data problems, not transient faults.
	if errors.Is(err, ErrEmptyWordlist) || errors.Is(err, ErrWordlistTooLarge) ||
		errors.Is(err, ErrUnknownList) {
		return false
	}

	var se *StoreError
	if errors.As(err, &se) {
		return IsNetworkError(se.Err)
	}

	return IsNetworkError(err)
}

// IsNetworkError checks if an error is a network-related error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrNetworkUnreachable) || errors.Is(err, ErrConnectionRefused) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	networkPatterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"connection timed out",
		"dial tcp",
	}
	for _, pattern := range networkPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// WrapNetworkError wraps a network error with the matching sentinel.
func WrapNetworkError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection refused") {
		return fmt.Errorf("%w: %v", ErrConnectionRefused, err)
	}
	if strings.Contains(msg, "network is unreachable") {
		return fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return err
}
