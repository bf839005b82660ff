// Package productrepo persists product aggregates.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row. The quantity CHECK backs up the domain rule
// that stock never goes negative.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"size:255;not null"`
	Category    string          `gorm:"size:100;not null;index"`
	Description *string         `gorm:"type:text"`
	ImageURL    *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_products_price,price >= 0"`
	Quantity    int             `gorm:"not null;default:0;check:chk_products_quantity,quantity >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		FarmerID:    p.FarmerID().Bytes(),
		Name:        p.Name(),
		Category:    p.Category(),
		Description: p.Description(),
		ImageURL:    p.ImageURL(),
		Price:       p.Price().Amount(),
		Quantity:    p.Quantity(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, farmerID,
		dto.Name, dto.Category,
		dto.Description, dto.ImageURL,
		price, dto.Quantity,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
