package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a buyer's request for quantity units of a product.
// Quantity is checked against the locked stock by the handler, not here, so that
// a non-positive quantity is reported as insufficient stock.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(buyerID, productID kernel.UUID, quantity int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c PlaceOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	c.productID = id
	return nil
}
