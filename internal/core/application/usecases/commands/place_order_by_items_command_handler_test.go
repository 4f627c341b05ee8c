package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderByItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	med := newTestMedicine(t, "Paracetamol", 3.5, 10)
	item, _ := commands.NewOrderItem(med.ID(), 4)
	cmd, _ := commands.NewPlaceOrderByItemsCommand(userID, "8 Oak Ave", "555-0102", []commands.OrderItem{item})

	orderRepo := new(MockOrderRepository)
	medRepo := new(MockMedicineRepository)
	uow := new(MockPlacementUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("MedicineRepository").Return(medRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		medRepo.On("Get", ctx, med.ID()).Return(med, nil).Once(),
		medRepo.On("DecrementStock", ctx, med.ID(), 4).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderByItemsCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)

	expectedTotal, _ := kernel.NewMoneyFromFloat(14)
	require.True(t, placed.TotalAmount().IsEqual(expectedTotal))

	orderRepo.AssertExpectations(t)
	medRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderByItemsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderByItemsCommand{} // not constructed properly
	factory := new(MockPlacementUoWFactory)
	h := commands.NewPlaceOrderByItemsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderByItemsCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	med := newTestMedicine(t, "Paracetamol", 3.5, 2)
	item, _ := commands.NewOrderItem(med.ID(), 4)
	cmd, _ := commands.NewPlaceOrderByItemsCommand(userID, "8 Oak Ave", "555-0102", []commands.OrderItem{item})

	medRepo := new(MockMedicineRepository)
	uow := new(MockPlacementUoW)
	uow.On("MedicineRepository").Return(medRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		medRepo.On("Get", ctx, med.ID()).Return(med, nil).Once(),
		medRepo.On("DecrementStock", ctx, med.ID(), 4).
			Return(medicine.NewInsufficientStockError(med.Name(), 4)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderByItemsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, medicine.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit", ctx)
	medRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
