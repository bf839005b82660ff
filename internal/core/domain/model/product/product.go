package product

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	minNameLength     = 2
	maxNameLength     = 255
	minCategoryLength = 2
	maxCategoryLength = 100
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reservation that the current stock cannot cover.
type InsufficientStockError struct {
	Requested int
	Available int
}

func NewInsufficientStockError(requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrInsufficientStock, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is a farmer's listing. Its quantity is the stock on hand and never goes negative.
type Product struct {
	id       kernel.UUID
	farmerID kernel.UUID

	name        string
	category    string
	description *string
	imageURL    *string

	price    kernel.Money
	quantity int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewProduct(id, farmerID kernel.UUID, name, category string, price kernel.Money, quantity int) (*Product, error) {
	now := time.Now().UTC()
	return RestoreProduct(id, farmerID, name, category, nil, nil, price, quantity, now, now)
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(
	id, farmerID kernel.UUID,
	name, category string,
	description, imageURL *string,
	price kernel.Money,
	quantity int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) FarmerID() kernel.UUID {
	return p.farmerID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Description() *string {
	return p.description
}

func (p *Product) ImageURL() *string {
	return p.imageURL
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsOwnedBy reports whether userID is the farmer who lists the product.
func (p *Product) IsOwnedBy(userID kernel.UUID) bool {
	return p.farmerID.IsEqual(userID)
}

// Reserve takes quantity units out of stock. It fails with *InsufficientStockError
// when quantity is below 1 or above the stock on hand, leaving the stock unchanged.
func (p *Product) Reserve(quantity int) error {
	if quantity < 1 || quantity > p.quantity {
		return NewInsufficientStockError(quantity, p.quantity)
	}
	p.quantity -= quantity
	p.touch()
	return nil
}

// ChangePrice sets a new unit price. Orders already placed keep their own total.
func (p *Product) ChangePrice(price kernel.Money) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Product) ChangeQuantity(quantity int) error {
	if err := p.setQuantity(quantity); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Product) Rename(name string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Product) ChangeCategory(category string) error {
	if err := p.setCategory(category); err != nil {
		return err
	}
	p.touch()
	return nil
}

// ChangeDescription sets or, with nil, clears the description.
func (p *Product) ChangeDescription(description *string) {
	p.description = description
	p.touch()
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmerID", err)
	}
	p.farmerID = id
	return nil
}

func (p *Product) setName(name string) error {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, minNameLength, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if n := utf8.RuneCountInString(category); n < minCategoryLength || n > maxCategoryLength {
		return errs.NewValueIsOutOfRangeError("category length", n, minCategoryLength, maxCategoryLength)
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
