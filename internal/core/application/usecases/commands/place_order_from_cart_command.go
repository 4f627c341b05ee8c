package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrPlaceOrderFromCartCommandIsNotConstructed = errors.New(
		"PlaceOrderFromCartCommand must be created via NewPlaceOrderFromCartCommand constructor",
	)
)

// PlaceOrderFromCartCommand represents a request to place an order from the
// authenticated user's stored cart. The cart is looked up by the user's
// identifier and deleted once the order is placed.
//
// Example:
//
//	cmd, err := NewPlaceOrderFromCartCommand(userID, "12 Main St", "555-0101")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderFromCartCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderFromCartCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	address string
	contact string

	guard guard.ConstructorGuard
}

// NewPlaceOrderFromCartCommand creates a command to place an order from the
// user's stored cart. Validates that the user ID is valid and that address
// and contact are not empty.
func NewPlaceOrderFromCartCommand(userID kernel.UUID, address string, contact string) (PlaceOrderFromCartCommand, error) {
	cmd := PlaceOrderFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddress(address),
		cmd.setContact(contact),
	); err != nil {
		return PlaceOrderFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderFromCartCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderFromCartCommandIsNotConstructed)
}

// UserID returns the identifier of the ordering user.
func (c PlaceOrderFromCartCommand) UserID() kernel.UUID {
	return c.userID
}

// Address returns the delivery address.
func (c PlaceOrderFromCartCommand) Address() string {
	return c.address
}

// Contact returns the customer's contact information.
func (c PlaceOrderFromCartCommand) Contact() string {
	return c.contact
}

func (c *PlaceOrderFromCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderFromCartCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderFromCartCommand) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}
