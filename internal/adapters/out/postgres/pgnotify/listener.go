package pgnotify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

// Deliverer receives the raw event payload for a user, e.g. the WebSocket hub.
type Deliverer interface {
	Deliver(userID string, payload []byte)
}

// Listener relays NOTIFY events on its channel to a Deliverer. It holds its own
// connection, reconnecting through lib/pq's Listener.
type Listener struct {
	dsn          string
	channel      string
	deliverer    Deliverer
	logger       *slog.Logger
	pingInterval time.Duration
}

func NewListener(dsn, channel string, deliverer Deliverer, logger *slog.Logger) *Listener {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Listener{
		dsn:          dsn,
		channel:      channel,
		deliverer:    deliverer,
		logger:       logger.With("component", "notification_listener", "channel", channel),
		pingInterval: 90 * time.Second,
	}
}

// Run blocks until ctx is cancelled or the initial LISTEN fails.
// The ready channel, when non-nil, is closed once LISTEN succeeded.
func (l *Listener) Run(ctx context.Context, ready chan<- struct{}) error {
	listener := pq.NewListener(l.dsn, 10*time.Second, time.Minute, l.onEvent)
	defer func() { _ = listener.Close() }()

	if err := listener.Listen(l.channel); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "Listening for notifications")
	if ready != nil {
		close(ready)
	}

	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.InfoContext(ctx, "Notification listener stopped")
			return nil
		case n := <-listener.Notify:
			// nil after a reconnect; events sent while disconnected are not replayed
			if n == nil {
				continue
			}
			l.dispatch(ctx, n.Extra)
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				l.logger.WarnContext(ctx, "Listener ping failed", "error", err)
			}
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, payload string) {
	var header struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(payload), &header); err != nil || header.UserID == "" {
		l.logger.WarnContext(ctx, "Dropping malformed notification event", "error", err)
		return
	}
	l.deliverer.Deliver(header.UserID, []byte(payload))
}

func (l *Listener) onEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnected:
		l.logger.Debug("Listener connected")
	case pq.ListenerEventDisconnected:
		l.logger.Warn("Listener disconnected", "error", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("Listener reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		l.logger.Warn("Listener connection attempt failed", "error", err)
	}
}
