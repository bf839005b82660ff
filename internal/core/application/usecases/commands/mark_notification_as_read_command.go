package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrNotificationCommandIsNotConstructed = errors.New(
	"notification command must be created via its constructor",
)

// NotificationCommand addresses one notification of one user. It backs both
// MarkNotificationAsRead and DeleteNotification.
type NotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

func NewNotificationCommand(notificationID, userID kernel.UUID) (NotificationCommand, error) {
	cmd := NotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNotificationID(notificationID),
		cmd.setUserID(userID),
	); err != nil {
		return NotificationCommand{}, err
	}

	return cmd, nil
}

func (c NotificationCommand) Validate() error {
	return c.guard.Validate(ErrNotificationCommandIsNotConstructed)
}

func (c NotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c NotificationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *NotificationCommand) setNotificationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("notificationID", err)
	}
	c.notificationID = id
	return nil
}

func (c *NotificationCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	c.userID = id
	return nil
}
