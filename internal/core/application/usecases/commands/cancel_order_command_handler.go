package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order and restores its stock.
//
// Cancellation is compensating: every line item's quantity is returned to the
// catalog in the same transaction as the status change, so the two can never
// diverge. Cancelling an already cancelled order succeeds without touching
// stock again.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderStockUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderStockUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// Fails with an ObjectNotFoundError if the order does not exist and with
// order.ErrInvalidStatusTransition if it has already shipped.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Stock is restored only on the transition out of a live status;
	// a repeat cancel must not credit the catalog twice.
	alreadyCancelled := existing.Status() == order.StatusCancelled

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	if !alreadyCancelled {
		medicineRepo := uow.MedicineRepository()
		for _, item := range existing.Items() {
			if err = medicineRepo.IncrementStock(ctx, item.MedicineID(), item.Quantity()); err != nil {
				return nil, err
			}
		}

		if err = orderRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
