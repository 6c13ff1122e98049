// Package guard enforces the safety rails around destructive operations:
// the operator-echoed confirmation token, the mandatory reason, and the
// best-effort offline notification to the fleet-status service.
package guard

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// tokenLength is how many hex characters of the hostname hash the operator
// has to echo back.
const tokenLength = 10

// BadConfirmationError indicates the supplied confirmation token does not
// match the one derived from the hostname.
type BadConfirmationError struct {
	Hostname string
}

func (e *BadConfirmationError) Error() string {
	return fmt.Sprintf("bad confirmation token for %s, run the command without --magic to obtain it", e.Hostname)
}

// IsBadConfirmationError checks if an error is a BadConfirmationError
func IsBadConfirmationError(err error) bool {
	var e *BadConfirmationError
	return errors.As(err, &e)
}

// MissingReasonError indicates a destructive operation was requested
// without a reason.
type MissingReasonError struct {
	Operation string
}

func (e *MissingReasonError) Error() string {
	return fmt.Sprintf("%s requires a non-empty --reason", e.Operation)
}

// IsMissingReasonError checks if an error is a MissingReasonError
func IsMissingReasonError(err error) bool {
	var e *MissingReasonError
	return errors.As(err, &e)
}

// Token derives the confirmation token for a hostname. It is a pure
// function of the hostname, so a token obtained from one run confirms any
// later run against the same host.
func Token(hostname string) string {
	sum := sha256.Sum256([]byte(hostname))
	return hex.EncodeToString(sum[:])[:tokenLength]
}

// Confirm validates an operator-supplied token and reason for a destructive
// operation. It must pass before any contact with the target.
func Confirm(operation, hostname, magic, reason string) error {
	if magic != Token(hostname) {
		return &BadConfirmationError{Hostname: hostname}
	}
	if reason == "" {
		return &MissingReasonError{Operation: operation}
	}
	return nil
}
