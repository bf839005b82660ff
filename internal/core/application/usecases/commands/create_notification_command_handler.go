package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// CreateNotificationCommandHandler stores notifications and pushes them to connected
// clients. It is the ports.NotificationSink given to the order and verification
// workflows; each notification is stored in its own transaction, after the workflow
// that raised it has committed.
type CreateNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

var _ ports.NotificationSink = (*CreateNotificationCommandHandler)(nil)

// NewCreateNotificationCommandHandler accepts a nil publisher, in which case
// notifications are only stored.
func NewCreateNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *CreateNotificationCommandHandler {
	return &CreateNotificationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "notifications"),
	}
}

func (h *CreateNotificationCommandHandler) Handle(ctx context.Context, cmd CreateNotificationCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n := cmd.Notification()
	if err := h.Notify(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Notify persists n and then publishes it. A publishing failure is logged only:
// the stored row is still served by the inbox and the events feed.
func (h *CreateNotificationCommandHandler) Notify(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		return storageFailure("add notification", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return storageFailure("commit notification", err)
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, n); err != nil {
			h.logger.WarnContext(ctx, "Failed to publish notification",
				"notification_id", n.ID().String(),
				"user_id", n.UserID().String(),
				"error", err,
			)
		}
	}

	return nil
}
