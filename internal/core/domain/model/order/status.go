package order

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly forward-moving state machine:
//
//	Preparing ──> OutForDelivery ──> Delivered
//
// Delivered is terminal; advancing it is a no-op. The transition function is
// total: it is defined for every valid status and cannot fail.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status of every placed order.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is the terminal state with no further transitions.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is intentionally excluded as it is invalid.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Preparing, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Advance returns the next status in the lifecycle.
//
// Transitions:
//   - Preparing -> OutForDelivery
//   - OutForDelivery -> Delivered
//   - Delivered -> Delivered (terminal, no-op)
//
// The function is total over valid statuses and never moves backward.
// Invalid statuses are returned unchanged.
func (s Status) Advance() Status {
	switch s {
	case Preparing:
		return OutForDelivery
	case OutForDelivery:
		return Delivered
	default:
		return s
	}
}
