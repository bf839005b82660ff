package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order along pending -> confirmed -> delivered.
// Only the farmer owning the ordered product may do so. The order row stays locked
// between the status check and the write; the buyer is notified after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	notifier   notifier
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
		notifier:   notifier{sink: sink, logger: logger.With("component", "update_order_status")},
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageFailure("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, storageFailure("lock order", err)
	}

	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return nil, storageFailure("get product", err)
	}

	if err = h.policy.CanTransition(cmd.ActorID(), p); err != nil {
		return nil, err
	}

	if err = o.TransitionTo(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, storageFailure("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageFailure("commit order status", err)
	}

	h.notifyBuyer(ctx, o, p)
	return o, nil
}

func (h *UpdateOrderStatusCommandHandler) notifyBuyer(ctx context.Context, o *order.Order, p *product.Product) {
	h.notifier.send(ctx, o.BuyerID(),
		"Order Status Updated",
		fmt.Sprintf("Your order for %s has been %s", p.Name(), o.Status()),
		notification.TypeOrder,
		notification.Metadata{
			"order_id":   o.ID().String(),
			"product_id": p.ID().String(),
			"status":     o.Status().String(),
		},
	)
}
