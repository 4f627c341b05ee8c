package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// placeOrderItems runs the placement routine shared by all three order
// placement flows, inside the caller's already-begun transaction.
//
// For every requested item it resolves the medicine, snapshots its current
// price and decrements the stock with a conditional update. Because the
// decrement only succeeds when enough stock remains and the caller rolls the
// transaction back on any error, a shortage on item N undoes the decrements
// of items 1..N-1 - placement is all-or-nothing and cannot oversell even
// under concurrent requests.
//
// The order total is always recomputed from the catalog prices captured here;
// stored cart totals are never trusted.
//
// The new order is added to the repository but not committed; the caller owns
// the transaction and any cart cleanup.
func placeOrderItems(
	ctx context.Context,
	uow PlacementUoW,
	userID kernel.UUID,
	items []OrderItem,
	address string,
	contact string,
) (*order.Order, error) {
	medicineRepo := uow.MedicineRepository()

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		med, err := medicineRepo.Get(ctx, item.MedicineID())
		if err != nil {
			return nil, err
		}

		if err = medicineRepo.DecrementStock(ctx, med.ID(), item.Quantity()); err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(med.ID(), item.Quantity(), med.Price())
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), userID, lineItems, address, contact)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	return newOrder, nil
}
