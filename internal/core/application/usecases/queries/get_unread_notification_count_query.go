package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetUnreadNotificationCountQueryIsNotConstructed = errors.New(
	"GetUnreadNotificationCountQuery must be created via NewGetUnreadNotificationCountQuery constructor",
)

type GetUnreadNotificationCountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUnreadNotificationCountQuery(userID kernel.UUID) (GetUnreadNotificationCountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUnreadNotificationCountQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	return GetUnreadNotificationCountQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUnreadNotificationCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadNotificationCountQueryIsNotConstructed)
}

func (q GetUnreadNotificationCountQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUnreadNotificationCountQueryHandler struct {
	db *gorm.DB
}

func NewGetUnreadNotificationCountQueryHandler(db *gorm.DB) GetUnreadNotificationCountQueryHandler {
	return GetUnreadNotificationCountQueryHandler{db: db}
}

func (h GetUnreadNotificationCountQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadNotificationCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Table("notifications").
		Where("user_id = ? AND read = ?", query.UserID().Bytes(), false).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewStorageFailureError("count unread notifications", err)
	}

	return count, nil
}
