package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkAllNotificationsAsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsAsReadCommand must be created via NewMarkAllNotificationsAsReadCommand constructor",
)

type MarkAllNotificationsAsReadCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkAllNotificationsAsReadCommand(userID kernel.UUID) (MarkAllNotificationsAsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkAllNotificationsAsReadCommand{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	return MarkAllNotificationsAsReadCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c MarkAllNotificationsAsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsAsReadCommandIsNotConstructed)
}

func (c MarkAllNotificationsAsReadCommand) UserID() kernel.UUID {
	return c.userID
}
