package http

import (
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"
)

var _ servers.ServerInterface = (*Server)(nil)

// OrderRecorder counts order workflow outcomes. *metrics.Metrics satisfies it.
type OrderRecorder interface {
	OrderPlaced(outcome string)
	OrderTransitioned(status, outcome string)
}

// Handlers bundles the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	PlaceOrder                 commands.PlaceOrderCommandHandler
	UpdateOrderStatus          commands.UpdateOrderStatusCommandHandler
	UpdateProduct              commands.UpdateProductCommandHandler
	VerifyFarmer               commands.VerifyFarmerCommandHandler
	MarkNotificationAsRead     commands.MarkNotificationAsReadCommandHandler
	MarkAllNotificationsAsRead commands.MarkAllNotificationsAsReadCommandHandler
	DeleteNotification         commands.DeleteNotificationCommandHandler

	// Query handlers
	ListOrders                 queries.ListOrdersQueryHandler
	GetOrder                   queries.GetOrderQueryHandler
	ListNotifications          queries.ListNotificationsQueryHandler
	GetUnreadNotificationCount queries.GetUnreadNotificationCountQueryHandler
	GetNotificationEvents      queries.GetNotificationEventsQueryHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	recorder OrderRecorder
	logger   *slog.Logger
}

// NewServer creates the API server. recorder may be nil.
func NewServer(handlers Handlers, recorder OrderRecorder, logger *slog.Logger) *Server {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Server{
		handlers: handlers,
		recorder: recorder,
		logger:   logger.With("component", "http"),
	}
}

type nopRecorder struct{}

func (nopRecorder) OrderPlaced(string)               {}
func (nopRecorder) OrderTransitioned(string, string) {}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, errs.ErrStorageFailure):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}
