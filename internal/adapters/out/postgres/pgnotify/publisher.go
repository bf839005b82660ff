package pgnotify

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// maxPayload is PostgreSQL's NOTIFY payload limit minus some headroom.
const maxPayload = 7900

// Publisher implements ports.NotificationPublisher with pg_notify.
type Publisher struct {
	db      *gorm.DB
	channel string
}

func NewPublisher(db *gorm.DB, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{db: db, channel: channel}
}

// Publish sends the notification as JSON. Oversized metadata is dropped from the
// event; clients still find it through the inbox.
func (p *Publisher) Publish(ctx context.Context, n *notification.Notification) error {
	event := EventFromDomain(n)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification event: %w", err)
	}

	if len(payload) > maxPayload {
		event.Metadata = nil
		if payload, err = json.Marshal(event); err != nil {
			return fmt.Errorf("encode notification event: %w", err)
		}
	}

	return p.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", p.channel, string(payload)).Error
}
