package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// MarkNotificationAsReadCommandHandler flags one of the caller's notifications as read.
// Someone else's notification is reported as not found.
type MarkNotificationAsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationAsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationAsReadCommandHandler {
	return MarkNotificationAsReadCommandHandler{uowFactory: uowFactory}
}

func (h *MarkNotificationAsReadCommandHandler) Handle(ctx context.Context, cmd NotificationCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := getOwnedNotification(ctx, repo, cmd)
	if err != nil {
		return nil, err
	}

	n.MarkAsRead()
	if err = repo.Update(ctx, n); err != nil {
		return nil, storageFailure("update notification", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageFailure("commit notification", err)
	}

	return n, nil
}

func getOwnedNotification(ctx context.Context, repo ports.NotificationRepository, cmd NotificationCommand) (*notification.Notification, error) {
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, storageFailure("get notification", err)
	}
	if !n.BelongsTo(cmd.UserID()) {
		return nil, errs.NewObjectNotFoundError("notification", cmd.NotificationID().String())
	}
	return n, nil
}
