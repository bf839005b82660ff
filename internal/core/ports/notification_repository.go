package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkAllAsRead flags every unread notification of userID and returns how many changed.
	MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error)

	// DeleteReadBefore removes read notifications created before cutoff.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
