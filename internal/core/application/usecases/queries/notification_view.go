package queries

import (
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationView is one inbox entry.
type NotificationView struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Title     string
	Message   string
	Type      notification.Type
	Read      bool
	Metadata  notification.Metadata
	CreatedAt time.Time
}

const notificationViewColumns = "id, user_id, title, message, type, read, metadata, created_at"

type notificationRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	Read      bool
	Metadata  []byte
	CreatedAt time.Time
}

func (r notificationRow) toView() (NotificationView, error) {
	id, idErr := kernel.UUIDFromGoogle(r.ID)
	userID, userErr := kernel.UUIDFromGoogle(r.UserID)
	typ, typeErr := notification.ParseType(r.Type)
	if err := errors.Join(idErr, userErr, typeErr); err != nil {
		return NotificationView{}, err
	}

	var metadata notification.Metadata
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &metadata); err != nil {
			return NotificationView{}, err
		}
	}

	return NotificationView{
		ID:        id,
		UserID:    userID,
		Title:     r.Title,
		Message:   r.Message,
		Type:      typ,
		Read:      r.Read,
		Metadata:  metadata,
		CreatedAt: r.CreatedAt,
	}, nil
}

func toNotificationViews(rows []notificationRow) ([]NotificationView, error) {
	views := make([]NotificationView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
