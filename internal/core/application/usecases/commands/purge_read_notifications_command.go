package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
	"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
)

// PurgeReadNotificationsCommand removes read notifications created before Cutoff.
type PurgeReadNotificationsCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeReadNotificationsCommand(cutoff time.Time) (PurgeReadNotificationsCommand, error) {
	if cutoff.IsZero() {
		return PurgeReadNotificationsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return PurgeReadNotificationsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

func (c PurgeReadNotificationsCommand) Cutoff() time.Time {
	return c.cutoff
}
