package router

import (
	"errors"
	"fmt"

	"github.com/sylgeist/oob-cli/pkg/inventory"
)

// InvalidArgumentError indicates a sub-argument failed validation before
// any contact with the target.
type InvalidArgumentError struct {
	Usage string
}

func (e *InvalidArgumentError) Error() string {
	return e.Usage
}

// IsInvalidArgumentError checks if an error is an InvalidArgumentError
func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// UnsupportedManufacturerError indicates the operation is not available on
// the target's hardware vendor.
type UnsupportedManufacturerError struct {
	Operation    OpKind
	Manufacturer inventory.Manufacturer
}

func (e *UnsupportedManufacturerError) Error() string {
	return fmt.Sprintf("%s is not supported on %s hardware", e.Operation, e.Manufacturer)
}

// IsUnsupportedManufacturerError checks if an error is an UnsupportedManufacturerError
func IsUnsupportedManufacturerError(err error) bool {
	var e *UnsupportedManufacturerError
	return errors.As(err, &e)
}
