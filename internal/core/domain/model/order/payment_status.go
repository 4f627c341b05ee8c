package order

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// PaymentStatus tracks the payment state of an order. Payment processing
// itself happens outside this service; the order only records the outcome.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of a placed order.
	PaymentPending

	// PaymentPaid indicates the payment was settled.
	PaymentPaid

	// PaymentFailed indicates the payment attempt failed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
		PaymentFailed:  "Failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
		PaymentFailed:  "Failed",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
