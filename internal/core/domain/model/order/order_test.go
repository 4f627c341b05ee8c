package order_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, quantity int, price float64) order.LineItem {
	t.Helper()
	unitPrice, err := kernel.NewMoneyFromFloat(price)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create a valid line item", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(10.0)
		item, err := order.NewLineItem(kernel.NewUUID(), 2, price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "20", item.Subtotal().String())
	})

	t.Run("should reject zero and negative quantities", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(10.0)
		for _, quantity := range []int{0, -1} {
			_, err := order.NewLineItem(kernel.NewUUID(), quantity, price)
			require.Error(t, err)
		}
	})

	t.Run("should reject invalid medicine ID", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(10.0)
		_, err := order.NewLineItem(kernel.UUID{}, 1, price)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.Money{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with computed total", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, 2, 10.0),
			mustLineItem(t, 1, 5.5),
		}

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "555-0101")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "25.5", o.TotalAmount().String())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Len(t, o.Items(), 2)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "12 Main St", "555-0101")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing address and contact", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "", "555-0101")
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "")
		require.Error(t, err)
	})

	t.Run("should reject invalid IDs", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), items, "12 Main St", "555-0101")
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, items, "12 Main St", "555-0101")
		require.Error(t, err)
	})

	t.Run("items are copied defensively", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "555-0101")
		require.NoError(t, err)

		items[0] = mustLineItem(t, 5, 99.0)

		assert.Equal(t, 1, o.Items()[0].Quantity())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state as-is", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 2, 10.0)}
		total, _ := kernel.NewMoneyFromFloat(20.0)
		createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, total,
			order.StatusShipped, order.PaymentPaid,
			"12 Main St", "555-0101", createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.TotalAmount().IsEqual(total))
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}
		total, _ := kernel.NewMoneyFromFloat(10.0)

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, total,
			order.StatusUnknown, order.PaymentPending,
			"12 Main St", "555-0101", time.Now(),
		)
		require.Error(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, total,
			order.StatusPending, order.PaymentUnknown,
			"12 Main St", "555-0101", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "555-0101")
		require.NoError(t, err)
		return o
	}

	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("repeat cancel is idempotent", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should fail for shipped orders and keep status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusShipped))

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.StatusShipped, o.Status())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should overwrite with any valid status", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "555-0101")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.StatusDelivered))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 10.0)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", "555-0101")
		require.NoError(t, err)

		require.Error(t, o.ChangeStatus(order.StatusUnknown))
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
