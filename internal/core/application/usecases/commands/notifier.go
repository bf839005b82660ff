package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// notifier sends best-effort notifications after a workflow committed.
// Failures are logged and never reach the caller.
type notifier struct {
	sink   ports.NotificationSink
	logger *slog.Logger
}

func (n notifier) send(
	ctx context.Context,
	recipient kernel.UUID,
	title, message string,
	typ notification.Type,
	metadata notification.Metadata,
) {
	msg, err := notification.NewNotification(kernel.NewUUID(), recipient, title, message, typ, metadata)
	if err == nil {
		err = n.sink.Notify(ctx, msg)
	}
	if err != nil {
		n.logger.WarnContext(ctx, "Failed to send notification",
			"recipient", recipient.String(),
			"title", title,
			"error", err,
		)
	}
}
