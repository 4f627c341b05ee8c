package queries

import (
	"context"
	"database/sql"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler reads a user's order history straight from the
// database, bypassing the aggregate repositories. Line items are joined with
// the catalog so responses carry current medicine names alongside the price
// snapshots taken at placement time.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query and returns the user's orders, newest first.
// A user with no orders gets an empty slice, not an error.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]GetOrdersByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByUserQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.payment_status,
			o.total_amount,
			o.address,
			o.contact,
			o.created_at,
			i.medicine_id,
			i.quantity,
			i.unit_price,
			m.name
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		LEFT JOIN medicines m ON m.id = i.medicine_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id, i.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			paymentStatus int
			totalAmount   decimal.Decimal
			address       string
			contact       string
			createdAt     time.Time
			medicineID    uuid.UUID
			quantity      int
			unitPrice     decimal.Decimal
			medicineName  sql.NullString
		)

		err = rows.Scan(
			&id,
			&status,
			&paymentStatus,
			&totalAmount,
			&address,
			&contact,
			&createdAt,
			&medicineID,
			&quantity,
			&unitPrice,
			&medicineName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(orderID) {
			total, moneyErr := kernel.NewMoney(totalAmount)
			if moneyErr != nil {
				return nil, moneyErr
			}

			orders = append(orders, GetOrdersByUserQueryResponse{
				ID:            orderID,
				Status:        order.Status(status),
				PaymentStatus: order.PaymentStatus(paymentStatus),
				TotalAmount:   total,
				Address:       address,
				Contact:       contact,
				CreatedAt:     createdAt,
				Items:         make([]GetOrdersByUserQueryItemResponse, 0),
			})
		}

		item, itemErr := buildItemResponse(medicineID, medicineName, quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		last := len(orders) - 1
		orders[last].Items = append(orders[last].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildItemResponse(
	medicineID uuid.UUID,
	medicineName sql.NullString,
	quantity int,
	unitPrice decimal.Decimal,
) (GetOrdersByUserQueryItemResponse, error) {
	medID, err := kernel.UUIDFromBytes(medicineID[:])
	if err != nil {
		return GetOrdersByUserQueryItemResponse{}, err
	}

	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return GetOrdersByUserQueryItemResponse{}, err
	}

	return GetOrdersByUserQueryItemResponse{
		MedicineID:   medID,
		MedicineName: medicineName.String,
		Quantity:     quantity,
		UnitPrice:    price,
		Subtotal:     price.MulInt(quantity),
	}, nil
}
