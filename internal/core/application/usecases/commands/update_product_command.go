package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ProductChanges lists the fields to change; nil fields are left as they are.
// A Description pointing to an empty string clears the description.
type ProductChanges struct {
	Name        *string
	Category    *string
	Description *string
	Price       *kernel.Money
	Quantity    *int
}

// IsEmpty reports whether no field is set.
func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && c.Category == nil && c.Description == nil && c.Price == nil && c.Quantity == nil
}

// UpdateProductCommand is the owning farmer's edit of a listing.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	actorID   kernel.UUID
	changes   ProductChanges

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID, actorID kernel.UUID, changes ProductChanges) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}

	var changesErr error
	if changes.IsEmpty() {
		changesErr = errs.NewValueIsRequiredError("at least one product field")
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setActorID(actorID),
		changesErr,
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdateProductCommand) Changes() ProductChanges {
	return c.changes
}

func (c *UpdateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	c.productID = id
	return nil
}

func (c *UpdateProductCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	c.actorID = id
	return nil
}
