package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetNotificationEventsQueryIsNotConstructed = errors.New(
	"GetNotificationEventsQuery must be created via NewGetNotificationEventsQuery constructor",
)

const defaultEventsLimit = 50

// GetNotificationEventsQuery polls for notifications created strictly after
// since. A zero since starts from the oldest notification.
type GetNotificationEventsQuery struct {
	userID kernel.UUID
	since  time.Time
	limit  int

	guard guard.ConstructorGuard
}

func NewGetNotificationEventsQuery(userID kernel.UUID, since time.Time, limit int) (GetNotificationEventsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationEventsQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	return GetNotificationEventsQuery{
		userID: userID,
		since:  since,
		limit:  normalizePage(defaultPage, limit, defaultEventsLimit).Limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetNotificationEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationEventsQueryIsNotConstructed)
}

func (q GetNotificationEventsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetNotificationEventsQuery) Since() time.Time {
	return q.since
}

func (q GetNotificationEventsQuery) Limit() int {
	return q.limit
}

// GetNotificationEventsQueryResponse carries the events oldest first. NextSince is
// the cursor for the following poll: the newest event's creation time, or the
// requested since when nothing new arrived.
type GetNotificationEventsQueryResponse struct {
	Events    []NotificationView
	NextSince time.Time
}
