package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
		"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
	)
)

// GetOrdersByUserQuery retrieves the order history of a single user. Both the
// self-service listing and the patient listing used by practitioners resolve
// to this query; they differ only in where the user identifier comes from.
//
// Example:
//
//	query, err := NewGetOrdersByUserQuery(userID)
//	if err != nil {
//	    return fmt.Errorf("invalid user id: %w", err)
//	}
//
//	handler := NewGetOrdersByUserQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for the given user's orders.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrdersByUserQueryResponse is one order in a user's history, with its
// line items resolved against the catalog.
type GetOrdersByUserQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	TotalAmount   kernel.Money
	Address       string
	Contact       string
	CreatedAt     time.Time
	Items         []GetOrdersByUserQueryItemResponse
}

// GetOrdersByUserQueryItemResponse is a single order line. UnitPrice is the
// price snapshot taken at placement time; MedicineName is resolved at read
// time and empty if the catalog entry has since been removed.
type GetOrdersByUserQueryItemResponse struct {
	MedicineID   kernel.UUID
	MedicineName string
	Quantity     int
	UnitPrice    kernel.Money
	Subtotal     kernel.Money
}
