package kernel_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.50))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "10.5", m.String())
	})

	t.Run("should create money from float", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(19.99)

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(0.1)
		b, _ := kernel.NewMoneyFromFloat(0.2)

		sum := a.Add(b)

		require.NoError(t, sum.Validate())
		assert.Equal(t, "0.3", sum.String())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(10.0)

		subtotal := price.MulInt(2)

		require.NoError(t, subtotal.Validate())
		assert.Equal(t, "20", subtotal.String())
	})

	t.Run("should compare by numeric value", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.RequireFromString("10.00"))
		b, _ := kernel.NewMoneyFromFloat(10)

		assert.True(t, a.IsEqual(b))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
