package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrPlaceOrderByItemsCommandIsNotConstructed = errors.New(
		"PlaceOrderByItemsCommand must be created via NewPlaceOrderByItemsCommand constructor",
	)
)

// PlaceOrderByItemsCommand represents a request to place an order from a
// caller-supplied item list, without a stored cart. Used for guest checkouts
// and pre-fetched flows.
type PlaceOrderByItemsCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	address string
	contact string
	items   []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderByItemsCommand creates a command to place an order from the
// supplied items. Validates that the user ID is valid, address and contact
// are not empty, and at least one valid item is present.
func NewPlaceOrderByItemsCommand(
	userID kernel.UUID,
	address string,
	contact string,
	items []OrderItem,
) (PlaceOrderByItemsCommand, error) {
	cmd := PlaceOrderByItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddress(address),
		cmd.setContact(contact),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderByItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderByItemsCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderByItemsCommandIsNotConstructed)
}

// UserID returns the identifier of the ordering user.
func (c PlaceOrderByItemsCommand) UserID() kernel.UUID {
	return c.userID
}

// Address returns the delivery address.
func (c PlaceOrderByItemsCommand) Address() string {
	return c.address
}

// Contact returns the customer's contact information.
func (c PlaceOrderByItemsCommand) Contact() string {
	return c.contact
}

// Items returns a copy of the requested items.
func (c PlaceOrderByItemsCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderByItemsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderByItemsCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderByItemsCommand) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}

func (c *PlaceOrderByItemsCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("cart items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
