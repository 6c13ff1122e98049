package inventory

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the hostname matched zero inventory records.
type NotFoundError struct {
	Hostname string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in inventory", e.Hostname)
}

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// AmbiguousError indicates the hostname matched more than one inventory
// record and the caller should qualify it, e.g. with a region suffix.
type AmbiguousError struct {
	Hostname string
	Matches  int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s matches %d inventory records, qualify the hostname (e.g. add a region suffix)", e.Hostname, e.Matches)
}

// IsAmbiguousError checks if an error is an AmbiguousError
func IsAmbiguousError(err error) bool {
	var e *AmbiguousError
	return errors.As(err, &e)
}

// MissingAttributeError indicates a matched record lacks a management
// address or manufacturer field.
type MissingAttributeError struct {
	Hostname  string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("inventory record for %s has no %s", e.Hostname, e.Attribute)
}

// IsMissingAttributeError checks if an error is a MissingAttributeError
func IsMissingAttributeError(err error) bool {
	var e *MissingAttributeError
	return errors.As(err, &e)
}

// InvalidAddressError indicates the resolved management address is unusable:
// empty, the empty-string placeholder sentinel, or the all-zeros address.
type InvalidAddressError struct {
	Hostname string
	Addr     string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("inventory returned invalid management address %q for %s", e.Addr, e.Hostname)
}

// IsInvalidAddressError checks if an error is an InvalidAddressError
func IsInvalidAddressError(err error) bool {
	var e *InvalidAddressError
	return errors.As(err, &e)
}
