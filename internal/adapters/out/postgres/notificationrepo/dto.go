// Package notificationrepo persists user notifications.
package notificationrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// MetadataJSON maps notification metadata to a jsonb column.
type MetadataJSON map[string]any

func (m MetadataJSON) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MetadataJSON) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into MetadataJSON", value)
	}
	return json.Unmarshal(raw, m)
}

// NotificationDTO is the notifications table row. The (user_id, created_at) index
// serves the inbox listing and the events cursor.
type NotificationDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Title     string       `gorm:"size:255;not null"`
	Message   string       `gorm:"type:text;not null"`
	Type      string       `gorm:"size:20;not null;default:'system';check:chk_notifications_type,type IN ('order','system','admin')"`
	Read      bool         `gorm:"not null;default:false;index"`
	Metadata  MetadataJSON `gorm:"type:jsonb"`
	CreatedAt time.Time    `gorm:"index:idx_notifications_user_created,priority:2"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		Read:      n.IsRead(),
		Metadata:  MetadataJSON(n.Metadata()),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	typ, err := notification.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, userID,
		dto.Title, dto.Message,
		typ, notification.Metadata(dto.Metadata),
		dto.Read, dto.CreatedAt,
	)
}
