package order

import (
	"errors"
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is not
// allowed from the order's current status, e.g. cancelling a shipped order.
var ErrInvalidStatusTransition = errors.New("order status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Cancellation is only possible before shipment. Cancelled and Delivered are
// final states, except that cancelling an already cancelled order is a no-op.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first placed.
	StatusPending

	// StatusProcessing indicates the order is being prepared for shipment.
	StatusProcessing

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before shipment.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Used when accepting status values from external callers.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//   - Cancelled -> Cancelled (repeat cancellation is a no-op)
//
// Invalid transitions:
//   - Shipped, Delivered: the order already left the warehouse
//   - Unknown: invalid initial state
//
// Returns (Cancelled, nil) on a valid transition, or (0, error) wrapping
// ErrInvalidStatusTransition otherwise.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusPending, StatusProcessing, StatusCancelled:
		return StatusCancelled, nil
	default:
		return 0, fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidStatusTransition, s)
	}
}
