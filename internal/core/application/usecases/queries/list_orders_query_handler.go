package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders newest first. Buyers see the orders they
// placed, farmers the orders on their products, admins every order.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		db:     db,
		policy: services.NewOrderAccessPolicy(),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	actor, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scope, err := h.policy.Scope(actor)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	base := ordersWithDetails(h.db.WithContext(ctx))
	if scope.BuyerID != nil {
		base = base.Where("o.buyer_id = ?", scope.BuyerID.Bytes())
	}
	if scope.FarmerID != nil {
		base = base.Where("p.farmer_id = ?", scope.FarmerID.Bytes())
	}
	if status := query.Status(); status != nil {
		base = base.Where("o.status = ?", int(*status))
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err = base.Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, errs.NewStorageFailureError("count orders", err)
	}

	page := query.Page()
	var rows []orderRow
	err = base.Select(orderViewColumns).
		Order("o.created_at DESC, o.id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, errs.NewStorageFailureError("list orders", err)
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return ListOrdersQueryResponse{}, viewErr
		}
		views = append(views, view)
	}

	return ListOrdersQueryResponse{
		Orders:     views,
		Pagination: NewPagination(page, total),
	}, nil
}
