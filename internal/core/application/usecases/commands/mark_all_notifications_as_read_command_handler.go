package commands

import (
	"context"
)

type MarkAllNotificationsAsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkAllNotificationsAsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsAsReadCommandHandler {
	return MarkAllNotificationsAsReadCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of notifications that changed from unread to read.
func (h *MarkAllNotificationsAsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsAsReadCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.NotificationRepository().MarkAllAsRead(ctx, cmd.UserID())
	if err != nil {
		return 0, storageFailure("mark all notifications as read", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, storageFailure("commit notifications", err)
	}

	return updated, nil
}
