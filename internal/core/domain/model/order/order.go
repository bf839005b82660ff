package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a buyer's purchase of a single product.
//
// Order follows these invariants:
//   - quantity is at least 1
//   - totalPrice is the unit price times quantity at placement and never changes afterwards
//   - status only moves forward along Pending -> Confirmed -> Delivered
type Order struct {
	id        kernel.UUID
	productID kernel.UUID
	buyerID   kernel.UUID

	quantity   int
	totalPrice kernel.Money

	status Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order and computes its total price from unitPrice.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("2.50")
//	o, err := order.NewOrder(kernel.NewUUID(), productID, buyerID, 4, price)
//	// o.TotalPrice().String() == "10.00"
func NewOrder(id, productID, buyerID kernel.UUID, quantity int, unitPrice kernel.Money) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setBuyerID(buyerID),
		o.setQuantity(quantity),
		unitPrice.Validate(),
	); err != nil {
		return nil, err
	}

	total, err := unitPrice.Multiply(quantity)
	if err != nil {
		return nil, err
	}
	o.totalPrice = total

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored total is kept as is.
func RestoreOrder(
	id, productID, buyerID kernel.UUID,
	quantity int,
	totalPrice kernel.Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice:    totalPrice,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setBuyerID(buyerID),
		o.setQuantity(quantity),
		totalPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsPlacedBy reports whether userID is the buyer of the order.
func (o *Order) IsPlacedBy(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID)
}

// TransitionTo moves the order to requested, or returns *InvalidTransitionError
// leaving the order untouched.
func (o *Order) TransitionTo(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) Confirm() error {
	return o.TransitionTo(Confirmed)
}

func (o *Order) Deliver() error {
	return o.TransitionTo(Delivered)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
