package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler returns an order to its buyer, to the farmer owning the
// product and to admins. Anyone else gets services.ErrAccessDenied.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:     db,
		policy: services.NewOrderAccessPolicy(),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	actor, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return OrderView{}, err
	}

	var row orderRow
	result := ordersWithDetails(h.db.WithContext(ctx)).
		Select(orderViewColumns).
		Where("o.id = ?", query.OrderID().Bytes()).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return OrderView{}, errs.NewStorageFailureError("get order", result.Error)
	}
	if result.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, err := row.toView()
	if err != nil {
		return OrderView{}, err
	}

	if err = h.policy.CanView(actor, view.BuyerID, view.FarmerID); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
