package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrPlaceOrderByCartIDCommandIsNotConstructed = errors.New(
		"PlaceOrderByCartIDCommand must be created via NewPlaceOrderByCartIDCommand constructor",
	)
)

// PlaceOrderByCartIDCommand represents a request to place an order from a
// cart addressed by its own identifier rather than by its owner.
type PlaceOrderByCartIDCommand struct { //nolint:recvcheck //using for validation
	cartID  kernel.UUID
	address string
	contact string

	guard guard.ConstructorGuard
}

// NewPlaceOrderByCartIDCommand creates a command to place an order from the
// identified cart. Validates that the cart ID is valid and address and
// contact are not empty.
func NewPlaceOrderByCartIDCommand(cartID kernel.UUID, address string, contact string) (PlaceOrderByCartIDCommand, error) {
	cmd := PlaceOrderByCartIDCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setAddress(address),
		cmd.setContact(contact),
	); err != nil {
		return PlaceOrderByCartIDCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderByCartIDCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderByCartIDCommandIsNotConstructed)
}

// CartID returns the identifier of the source cart.
func (c PlaceOrderByCartIDCommand) CartID() kernel.UUID {
	return c.cartID
}

// Address returns the delivery address.
func (c PlaceOrderByCartIDCommand) Address() string {
	return c.address
}

// Contact returns the customer's contact information.
func (c PlaceOrderByCartIDCommand) Contact() string {
	return c.contact
}

func (c *PlaceOrderByCartIDCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *PlaceOrderByCartIDCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderByCartIDCommand) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}
