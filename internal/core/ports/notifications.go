package ports

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// NotificationSink accepts notifications raised by business workflows. Callers treat
// it as best-effort: an error is logged and never undoes the calling operation.
type NotificationSink interface {
	Notify(ctx context.Context, n *notification.Notification) error
}

// NotificationPublisher fans a stored notification out to connected clients.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
