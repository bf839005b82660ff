package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
)

// UpdateProductCommandHandler applies the owner's edits to a product. It takes the
// same row lock as order placement, so a stock edit and a concurrent order serialize.
// Price changes never touch existing orders, whose totals are snapshots.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.OrderAccessPolicy
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, storageFailure("lock product", err)
	}

	if err = h.policy.CanEditProduct(cmd.ActorID(), p); err != nil {
		return nil, err
	}

	if err = applyProductChanges(p, cmd.Changes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, storageFailure("update product", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageFailure("commit product", err)
	}

	return p, nil
}

func applyProductChanges(p *product.Product, changes ProductChanges) error {
	var errList []error
	if changes.Name != nil {
		errList = append(errList, p.Rename(*changes.Name))
	}
	if changes.Category != nil {
		errList = append(errList, p.ChangeCategory(*changes.Category))
	}
	if changes.Price != nil {
		errList = append(errList, p.ChangePrice(*changes.Price))
	}
	if changes.Quantity != nil {
		errList = append(errList, p.ChangeQuantity(*changes.Quantity))
	}
	if changes.Description != nil {
		if *changes.Description == "" {
			p.ChangeDescription(nil)
		} else {
			desc := *changes.Description
			p.ChangeDescription(&desc)
		}
	}
	return errors.Join(errList...)
}
