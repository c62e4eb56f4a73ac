package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected by a business rule. Callers retry with
	// corrected input; it is never a system failure.
	ErrValidation = errors.New("validation failed")

	// ErrLineNotFound is returned when a cart update targets an absent line item.
	ErrLineNotFound = errors.New("line item not found")

	// ErrEmptyOrder is returned when order assembly receives no line items.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrInvalidTransition is returned when a checkout operation is attempted
	// outside the state that allows it.
	ErrInvalidTransition = errors.New("invalid checkout transition")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
