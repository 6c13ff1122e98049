package transport

import (
	"errors"
	"fmt"
)

// UnreachableError indicates the management address did not answer the
// reachability pre-check or refused the connection outright.
type UnreachableError struct {
	Addr string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("management address %s is unreachable", e.Addr)
}

// IsUnreachableError checks if an error is an UnreachableError
func IsUnreachableError(err error) bool {
	var e *UnreachableError
	return errors.As(err, &e)
}

// TimeoutError indicates the remote side accepted the operation but produced
// no response within the allotted time.
type TimeoutError struct {
	Addr    string
	Command string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q timed out against %s", e.Command, e.Addr)
}

// IsTimeoutError checks if an error is a TimeoutError
func IsTimeoutError(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

// AuthError indicates the management controller rejected the credentials.
type AuthError struct {
	Addr string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %v", e.Addr, e.Err)
}

// IsAuthError checks if an error is an AuthError
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// ProtocolError indicates the remote side answered but the exchange failed
// for a reason other than reachability, timeout or authentication. Detail
// carries the vendor-provided message verbatim where one exists.
type ProtocolError struct {
	Addr       string
	Detail     string
	StatusCode int // HTTP transports only, 0 otherwise
}

func (e *ProtocolError) Error() string {
	if e.StatusCode != 0 && e.Detail == "" {
		return fmt.Sprintf("protocol error from %s: HTTP %d", e.Addr, e.StatusCode)
	}
	return fmt.Sprintf("protocol error from %s: %s", e.Addr, e.Detail)
}

// IsProtocolError checks if an error is a ProtocolError
func IsProtocolError(err error) bool {
	var e *ProtocolError
	return errors.As(err, &e)
}
