package http

import (
	"time"

	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/order"
)

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest places an order from the authenticated user's stored cart.
type PlaceOrderRequest struct {
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// GuestOrderItem is one requested line in a guest checkout.
type GuestOrderItem struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}

// GuestOrderRequest places an order from an explicit item list.
type GuestOrderRequest struct {
	UserID  string           `json:"userId"`
	Address string           `json:"address"`
	Contact string           `json:"contact"`
	Items   []GuestOrderItem `json:"items"`
}

// ByCartOrderRequest places an order from a cart identified by its own ID.
type ByCartOrderRequest struct {
	CartID  string `json:"cartId"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// UpdateOrderStatusRequest overwrites an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one order line in an API response. Prices are decimal
// strings to avoid float rounding on the wire.
type OrderItemResponse struct {
	MedicineID   string `json:"medicineId"`
	MedicineName string `json:"medicineName,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	Subtotal     string `json:"subtotal"`
}

// OrderResponse is an order in an API response.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	TotalAmount   string              `json:"totalAmount"`
	Address       string              `json:"address"`
	Contact       string              `json:"contact"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
}

// CancelStaleOrdersResponse reports how many orders a sweep cancelled.
type CancelStaleOrdersResponse struct {
	Cancelled int `json:"cancelled"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			MedicineID: item.MedicineID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
			Subtotal:   item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:            o.ID().String(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		TotalAmount:   o.TotalAmount().String(),
		Address:       o.Address(),
		Contact:       o.Contact(),
		CreatedAt:     o.CreatedAt(),
		Items:         items,
	}
}

func orderResponseFromQuery(resp queries.GetOrdersByUserQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			MedicineID:   item.MedicineID.String(),
			MedicineName: item.MedicineName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.String(),
			Subtotal:     item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:            resp.ID.String(),
		Status:        resp.Status.String(),
		PaymentStatus: resp.PaymentStatus.String(),
		TotalAmount:   resp.TotalAmount.String(),
		Address:       resp.Address,
		Contact:       resp.Contact,
		CreatedAt:     resp.CreatedAt,
		Items:         items,
	}
}
