package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// PlaceOrderByCartIDCommandHandler places an order from a cart looked up by
// its own identifier. The ordering user is taken from the cart's owner; the
// cart is deleted in the same transaction on success.
type PlaceOrderByCartIDCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderByCartIDCommandHandler creates a handler for cart-ID order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderByCartIDCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderByCartIDCommandHandler {
	return PlaceOrderByCartIDCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command and returns the created order.
// Fails with an ObjectNotFoundError if the cart does not exist, and with a
// ValueIsRequiredError if it is empty or has no owner to attribute the
// order to.
func (h *PlaceOrderByCartIDCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderByCartIDCommand,
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

	sourceCart, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}

	if sourceCart.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}

	// Anonymous carts carry no owner to attribute the order to.
	userID := sourceCart.UserID()
	if userID == nil {
		return nil, errs.NewValueIsRequiredError("cart owner")
	}

	items, err := orderItemsFromCart(sourceCart.Items())
	if err != nil {
		return nil, err
	}

	placed, err := placeOrderItems(ctx, uow, *userID, items, cmd.Address(), cmd.Contact())
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Delete(ctx, sourceCart.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
