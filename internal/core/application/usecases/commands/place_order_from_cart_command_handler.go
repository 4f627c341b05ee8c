package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// PlaceOrderFromCartCommandHandler places an order from the user's stored cart.
//
// The whole flow - stock decrements, order creation and cart deletion - runs
// in one transaction, so a shortage on any item leaves the catalog and the
// cart untouched.
type PlaceOrderFromCartCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderFromCartCommandHandler creates a handler for cart-based order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderFromCartCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderFromCartCommandHandler {
	return PlaceOrderFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command and returns the created order.
// Fails with an ObjectNotFoundError if the user has no cart and with a
// ValueIsRequiredError if the cart is empty.
func (h *PlaceOrderFromCartCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderFromCartCommand,
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

	userCart, err := uow.CartRepository().GetByUserID(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if userCart.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}

	items, err := orderItemsFromCart(userCart.Items())
	if err != nil {
		return nil, err
	}

	placed, err := placeOrderItems(ctx, uow, cmd.UserID(), items, cmd.Address(), cmd.Contact())
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Delete(ctx, userCart.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
