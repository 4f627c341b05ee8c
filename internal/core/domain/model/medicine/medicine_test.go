package medicine_test

import (
	"errors"
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMedicine(t *testing.T) {
	price, _ := kernel.NewMoneyFromFloat(10.0)

	t.Run("should create a valid medicine", func(t *testing.T) {
		m, err := medicine.NewMedicine(kernel.NewUUID(), "Paracetamol 500mg", price, 5)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Paracetamol 500mg", m.Name())
		assert.Equal(t, 5, m.StockQuantity())
	})

	t.Run("should allow zero stock", func(t *testing.T) {
		m, err := medicine.NewMedicine(kernel.NewUUID(), "Ibuprofen", price, 0)

		require.NoError(t, err)
		assert.False(t, m.HasStock(1))
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := medicine.NewMedicine(kernel.NewUUID(), "Ibuprofen", price, -1)
		require.Error(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := medicine.NewMedicine(kernel.NewUUID(), "", price, 5)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := medicine.NewMedicine(kernel.NewUUID(), "Ibuprofen", kernel.Money{}, 5)
		require.Error(t, err)
	})
}

func TestMedicine_HasStock(t *testing.T) {
	price, _ := kernel.NewMoneyFromFloat(10.0)
	m, err := medicine.NewMedicine(kernel.NewUUID(), "Paracetamol", price, 5)
	require.NoError(t, err)

	assert.True(t, m.HasStock(5))
	assert.True(t, m.HasStock(1))
	assert.False(t, m.HasStock(6))
	assert.False(t, m.HasStock(0))
	assert.False(t, m.HasStock(-1))
}

func TestInsufficientStockError(t *testing.T) {
	err := medicine.NewInsufficientStockError("Paracetamol", 7)

	require.ErrorIs(t, err, medicine.ErrInsufficientStock)
	assert.Equal(t, "not enough stock for Paracetamol (requested 7)", err.Error())

	var target *medicine.InsufficientStockError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Paracetamol", target.MedicineName)
}
