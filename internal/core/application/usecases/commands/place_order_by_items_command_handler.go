package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
)

// PlaceOrderByItemsCommandHandler places an order from a caller-supplied
// item list. No cart is read or deleted.
//
// Unlike the historical behavior of this flow, stock decrements are not
// interleaved with later-item validation in a way that can leave partial
// effects: everything runs in one transaction that rolls back as a whole.
type PlaceOrderByItemsCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderByItemsCommandHandler creates a handler for item-list order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderByItemsCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderByItemsCommandHandler {
	return PlaceOrderByItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command and returns the created order.
func (h *PlaceOrderByItemsCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderByItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placed, err := placeOrderItems(ctx, uow, cmd.UserID(), cmd.Items(), cmd.Address(), cmd.Contact())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
