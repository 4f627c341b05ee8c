package order_test

import (
	"fmt"
	"testing"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusPending))
		assert.Equal(t, 2, int(order.StatusProcessing))
		assert.Equal(t, 3, int(order.StatusShipped))
		assert.Equal(t, 4, int(order.StatusDelivered))
		assert.Equal(t, 5, int(order.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusShipped,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.StatusUnknown:    "Unknown",
		order.StatusPending:    "Pending",
		order.StatusProcessing: "Processing",
		order.StatusShipped:    "Shipped",
		order.StatusDelivered:  "Delivered",
		order.StatusCancelled:  "Cancelled",
	}

	for status, str := range expected {
		assert.Equal(t, str, status.String())
	}

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, str := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"} {
			status, err := order.StatusFromString(str)

			require.NoError(t, err)
			assert.Equal(t, str, status.String())
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		_, err := order.StatusFromString("Refunded")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")

		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Pending", func(t *testing.T) {
		newStatus, err := order.StatusPending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, newStatus)
	})

	t.Run("should cancel from Processing", func(t *testing.T) {
		newStatus, err := order.StatusProcessing.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, newStatus)
	})

	t.Run("repeat cancel succeeds", func(t *testing.T) {
		newStatus, err := order.StatusCancelled.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, newStatus)
	})

	t.Run("should not cancel shipped or delivered orders", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusShipped, order.StatusDelivered} {
			_, err := status.Cancel()

			require.Error(t, err)
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should validate valid payment statuses", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{order.PaymentPending, order.PaymentPaid, order.PaymentFailed} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown payment status", func(t *testing.T) {
		require.Error(t, order.PaymentUnknown.Validate())
	})

	t.Run("should have string representations", func(t *testing.T) {
		assert.Equal(t, "Pending", order.PaymentPending.String())
		assert.Equal(t, "Paid", order.PaymentPaid.String())
		assert.Equal(t, "Failed", order.PaymentFailed.String())
		assert.Equal(t, "Unknown", order.PaymentUnknown.String())
	})
}
