package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

const defaultNotificationsLimit = 20

// NotificationFilter narrows the inbox. Nil fields do not filter.
type NotificationFilter struct {
	Read *bool
	Type *notification.Type
}

type ListNotificationsQuery struct {
	userID kernel.UUID
	filter NotificationFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(
	userID kernel.UUID,
	filter NotificationFilter,
	page, limit int,
) (ListNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	if filter.Type != nil {
		if err := filter.Type.Validate(); err != nil {
			return ListNotificationsQuery{}, err
		}
	}

	return ListNotificationsQuery{
		userID: userID,
		filter: filter,
		page:   normalizePage(page, limit, defaultNotificationsLimit),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q ListNotificationsQuery) Filter() NotificationFilter {
	return q.filter
}

func (q ListNotificationsQuery) Page() Page {
	return q.page
}

type ListNotificationsQueryResponse struct {
	Notifications []NotificationView
	Pagination    Pagination
}
