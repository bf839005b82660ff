package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetNotificationEventsQueryHandler serves the polling feed. The notifications
// table is the only state, so any instance can answer any client.
type GetNotificationEventsQueryHandler struct {
	db *gorm.DB
}

func NewGetNotificationEventsQueryHandler(db *gorm.DB) GetNotificationEventsQueryHandler {
	return GetNotificationEventsQueryHandler{db: db}
}

func (h GetNotificationEventsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationEventsQuery,
) (GetNotificationEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationEventsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx).Table("notifications").Where("user_id = ?", query.UserID().Bytes())
	if !query.Since().IsZero() {
		db = db.Where("created_at > ?", query.Since())
	}

	var rows []notificationRow
	err := db.Select(notificationViewColumns).
		Order("created_at ASC, id ASC").
		Limit(query.Limit()).
		Scan(&rows).Error
	if err != nil {
		return GetNotificationEventsQueryResponse{}, errs.NewStorageFailureError("list notification events", err)
	}

	events, err := toNotificationViews(rows)
	if err != nil {
		return GetNotificationEventsQueryResponse{}, err
	}

	nextSince := query.Since()
	if len(events) > 0 {
		nextSince = events[len(events)-1].CreatedAt
	}

	return GetNotificationEventsQueryResponse{
		Events:    events,
		NextSince: nextSince,
	}, nil
}
