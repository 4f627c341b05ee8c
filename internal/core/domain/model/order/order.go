package order

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a placed medicine order. It is the durable
// record of what the customer bought and at what prices.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and owning user
//   - Must contain at least one line item
//   - Total amount always equals the sum of line-item subtotals captured
//     at creation time; it never changes afterwards
//   - Line items and their snapshot prices are immutable after creation
//   - Status transitions follow the rules defined on Status
//
// The struct uses private fields to enforce these invariants through the
// constructor and validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning user
	userID kernel.UUID

	// items is the ordered sequence of line items with price snapshots
	items []LineItem

	// totalAmount is the sum of line-item subtotals at creation time
	totalAmount kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// paymentStatus records the payment outcome
	paymentStatus PaymentStatus

	// address is the delivery address
	address string

	// contact is the customer's contact information
	contact string

	// createdAt is the placement timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a Pending payment.
// The total amount is computed from the line-item price snapshots; callers
// never supply a total directly, so the total invariant holds by construction.
//
// Returns a validation error if the ID or user ID is invalid, the item list
// is empty or contains invalid items, or address/contact are missing.
func NewOrder(id kernel.UUID, userID kernel.UUID, items []LineItem, address string, contact string) (*Order, error) {
	newOrder := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		newOrder.setID(id),
		newOrder.setUserID(userID),
		newOrder.setItems(items),
		newOrder.setAddress(address),
		newOrder.setContact(contact),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range newOrder.items {
		total = total.Add(item.Subtotal())
	}
	newOrder.totalAmount = total

	return newOrder, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts the stored status, payment status, total and
// creation time as-is, validating only that they are well formed.
// Intended for repository use when mapping database rows back to the domain.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []LineItem,
	totalAmount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	address string,
	contact string,
	createdAt time.Time,
) (*Order, error) {
	restored := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setUserID(userID),
		restored.setItems(items),
		restored.setAddress(address),
		restored.setContact(contact),
		status.Validate(),
		paymentStatus.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	restored.status = status
	restored.paymentStatus = paymentStatus
	restored.totalAmount = totalAmount

	return restored, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// Returns ErrOrderIsNotConstructed otherwise. Call when reconstructing orders
// from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total captured at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Contact returns the customer's contact information.
func (o *Order) Contact() string {
	return o.contact
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Cancel transitions the order to Cancelled.
//
// Cancellation is allowed from Pending and Processing. Cancelling an already
// cancelled order succeeds without changing anything. Shipped and Delivered
// orders cannot be cancelled; the call fails with ErrInvalidStatusTransition
// and the status is left unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus overwrites the order status with the supplied value.
// The value must be a valid status; beyond that no transition rules are
// enforced - fulfilment systems drive the status forward as they see fit.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	o.contact = contact
	return nil
}
