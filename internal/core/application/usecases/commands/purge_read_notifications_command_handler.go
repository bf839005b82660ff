package commands

import (
	"context"
)

type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewPurgeReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{uowFactory: uowFactory}
}

func (h *PurgeReadNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeReadNotificationsCommand) (int64, error) {
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

	deleted, err := uow.NotificationRepository().DeleteReadBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, storageFailure("purge read notifications", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, storageFailure("commit purge", err)
	}

	return deleted, nil
}
