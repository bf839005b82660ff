// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the role-scoped listings: by buyer, by product, newest first.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null;check:chk_orders_quantity,quantity >= 1"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status     int             `gorm:"not null;index"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		ProductID:  o.ProductID().Bytes(),
		BuyerID:    o.BuyerID().Bytes(),
		Quantity:   o.Quantity(),
		TotalPrice: o.TotalPrice().Amount(),
		Status:     int(o.Status()),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

// toDomain reconstructs the aggregate using RestoreOrder so the stored total is kept.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, productID, buyerID, dto.Quantity, total, order.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}
