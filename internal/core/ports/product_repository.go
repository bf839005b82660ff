package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// Update writes every mutable field, including a quantity of zero.
	Update(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate reads the product under an exclusive row lock. Concurrent
	// reservations on the same product serialize behind it, so the stock check
	// always sees the latest committed quantity.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
