package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	filter := queries.NotificationFilter{Read: params.Read}
	if params.Type != nil {
		typ, parseErr := notification.ParseType(string(*params.Type))
		if parseErr != nil {
			return s.respondError(ctx, parseErr)
		}
		filter.Type = &typ
	}

	query, err := queries.NewListNotificationsQuery(actorID, filter, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.NotificationPage{
		Notifications: toNotifications(result.Notifications),
		Pagination:    toPagination(result.Pagination),
	})
}

// GetUnreadNotificationCount handles GET /api/notifications/unread-count.
func (s *Server) GetUnreadNotificationCount(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUnreadNotificationCountQuery(actorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	count, err := s.handlers.GetUnreadNotificationCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UnreadCount{Count: count})
}

// GetNotificationEvents handles GET /api/notifications/events - the polling
// fallback for clients without a WebSocket.
func (s *Server) GetNotificationEvents(ctx echo.Context, params servers.GetNotificationEventsParams) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var since time.Time
	if params.Since != nil {
		since = *params.Since
	}

	query, err := queries.NewGetNotificationEventsQuery(actorID, since, deref(params.Limit))
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.GetNotificationEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.NotificationEvents{
		Events:    toNotifications(result.Events),
		NextSince: result.NextSince,
	})
}

// MarkAllNotificationsAsRead handles PUT /api/notifications/read-all.
func (s *Server) MarkAllNotificationsAsRead(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkAllNotificationsAsReadCommand(actorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.MarkAllNotificationsAsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UpdatedCount{Updated: updated})
}

// MarkNotificationAsRead handles PUT /api/notifications/{id}/read.
func (s *Server) MarkNotificationAsRead(ctx echo.Context, id servers.ID) error {
	cmd, err := s.notificationCommand(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.handlers.MarkNotificationAsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromNotification(n))
}

// DeleteNotification handles DELETE /api/notifications/{id}.
func (s *Server) DeleteNotification(ctx echo.Context, id servers.ID) error {
	cmd, err := s.notificationCommand(ctx, id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// notificationCommand builds the command for id and the caller. Its errors are
// echo.HTTPErrors rendered by ErrorHandler.
func (s *Server) notificationCommand(ctx echo.Context, id servers.ID) (commands.NotificationCommand, error) {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return commands.NotificationCommand{}, err
	}

	notificationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return commands.NotificationCommand{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid notification id")
	}

	cmd, err := commands.NewNotificationCommand(notificationID, actorID)
	if err != nil {
		return commands.NotificationCommand{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return cmd, nil
}
