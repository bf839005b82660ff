package commands

import (
	"context"
)

type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle removes one of the caller's notifications.
func (h *DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd NotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := getOwnedNotification(ctx, repo, cmd)
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, n.ID()); err != nil {
		return storageFailure("delete notification", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return storageFailure("commit notification", err)
	}

	return nil
}
