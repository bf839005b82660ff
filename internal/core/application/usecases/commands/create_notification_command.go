package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/guard"
)

var ErrCreateNotificationCommandIsNotConstructed = errors.New(
	"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
)

// CreateNotificationCommand carries a notification validated at construction.
type CreateNotificationCommand struct {
	notification *notification.Notification

	guard guard.ConstructorGuard
}

func NewCreateNotificationCommand(
	userID kernel.UUID,
	title, message string,
	typ notification.Type,
	metadata notification.Metadata,
) (CreateNotificationCommand, error) {
	n, err := notification.NewNotification(kernel.NewUUID(), userID, title, message, typ, metadata)
	if err != nil {
		return CreateNotificationCommand{}, err
	}

	return CreateNotificationCommand{
		notification: n,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

func (c CreateNotificationCommand) Notification() *notification.Notification {
	return c.notification
}
