package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order joined with its product and buyer.
type OrderView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	FarmerID    kernel.UUID
	BuyerID     kernel.UUID
	BuyerName   string
	Quantity    int
	TotalPrice  kernel.Money
	Status      order.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const orderViewColumns = `
	o.id,
	o.product_id,
	p.name AS product_name,
	p.farmer_id,
	o.buyer_id,
	b.name AS buyer_name,
	o.quantity,
	o.total_price,
	o.status,
	o.created_at,
	o.updated_at`

type orderRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	FarmerID    uuid.UUID
	BuyerID     uuid.UUID
	BuyerName   string
	Quantity    int
	TotalPrice  decimal.Decimal
	Status      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ordersWithDetails(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Joins("JOIN products AS p ON p.id = o.product_id").
		Joins("JOIN users AS b ON b.id = o.buyer_id")
}

func (r orderRow) toView() (OrderView, error) {
	id, idErr := kernel.UUIDFromGoogle(r.ID)
	productID, productErr := kernel.UUIDFromGoogle(r.ProductID)
	farmerID, farmerErr := kernel.UUIDFromGoogle(r.FarmerID)
	buyerID, buyerErr := kernel.UUIDFromGoogle(r.BuyerID)
	total, totalErr := kernel.NewMoney(r.TotalPrice)
	if err := errors.Join(idErr, productErr, farmerErr, buyerErr, totalErr); err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:          id,
		ProductID:   productID,
		ProductName: r.ProductName,
		FarmerID:    farmerID,
		BuyerID:     buyerID,
		BuyerName:   r.BuyerName,
		Quantity:    r.Quantity,
		TotalPrice:  total,
		Status:      order.Status(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
