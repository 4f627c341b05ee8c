package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels pending orders older than the
// command's maximum age, restoring their stock. The whole sweep runs in a
// single transaction.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
// Requires an OrderStockUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderStockUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	medicineRepo := uow.MedicineRepository()
	for _, staleOrder := range staleOrders {
		if err = staleOrder.Cancel(); err != nil {
			return 0, err
		}

		for _, item := range staleOrder.Items() {
			if err = medicineRepo.IncrementStock(ctx, item.MedicineID(), item.Quantity()); err != nil {
				return 0, err
			}
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
