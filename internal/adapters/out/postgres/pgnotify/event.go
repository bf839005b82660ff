// Package pgnotify fans stored notifications out to every service instance through
// PostgreSQL LISTEN/NOTIFY. The notifications table stays the source of truth; a missed
// event only delays delivery until the client polls the events feed.
package pgnotify

import (
	"time"

	"marketplace/internal/core/domain/model/notification"
)

// DefaultChannel is the NOTIFY channel used when none is configured.
const DefaultChannel = "notifications"

// Event is the JSON payload carried on the channel and forwarded to WebSocket clients.
type Event struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Type      string                `json:"type"`
	Read      bool                  `json:"read"`
	Metadata  notification.Metadata `json:"metadata,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

func EventFromDomain(n *notification.Notification) Event {
	return Event{
		ID:        n.ID().String(),
		UserID:    n.UserID().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		Read:      n.IsRead(),
		Metadata:  n.Metadata(),
		CreatedAt: n.CreatedAt(),
	}
}
