package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListNotificationsQueryHandler pages through a user's inbox, newest first.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	base := h.db.WithContext(ctx).Table("notifications").Where("user_id = ?", query.UserID().Bytes())
	filter := query.Filter()
	if filter.Read != nil {
		base = base.Where("read = ?", *filter.Read)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", filter.Type.String())
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return ListNotificationsQueryResponse{}, errs.NewStorageFailureError("count notifications", err)
	}

	page := query.Page()
	var rows []notificationRow
	err := base.Select(notificationViewColumns).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListNotificationsQueryResponse{}, errs.NewStorageFailureError("list notifications", err)
	}

	views, err := toNotificationViews(rows)
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return ListNotificationsQueryResponse{
		Notifications: views,
		Pagination:    NewPagination(page, total),
	}, nil
}
