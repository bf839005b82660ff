package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// PlaceOrderCommandHandler turns a buyer's request into a pending order.
//
// Preconditions are checked in this order, each rejecting without side effects:
//   - the actor is a buyer (*user.ForbiddenRoleError)
//   - the product exists (*errs.ObjectNotFoundError)
//   - the product's farmer is verified (user.ErrFarmerIsNotVerified)
//   - 1 <= quantity <= stock (*product.InsufficientStockError)
//
// The stock check, the decrement and the order insert run in one transaction under
// the product row lock, so two concurrent orders can never both take the last units.
// The farmer is notified after commit.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	notifier   notifier
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
		notifier:   notifier{sink: sink, logger: logger.With("component", "place_order")},
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	userRepo := uow.UserRepository()
	buyer, err := userRepo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return nil, storageFailure("get buyer", err)
	}

	if err = h.policy.CanPlace(services.ActorOf(buyer)); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	p, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, storageFailure("lock product", err)
	}

	farmer, err := userRepo.Get(ctx, p.FarmerID())
	if err != nil {
		return nil, storageFailure("get farmer", err)
	}

	if err = farmer.CanSell(); err != nil {
		return nil, err
	}

	if err = p.Reserve(cmd.Quantity()); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(kernel.NewUUID(), p.ID(), buyer.ID(), cmd.Quantity(), p.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, storageFailure("add order", err)
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, storageFailure("update product stock", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageFailure("commit order", err)
	}

	h.notifyFarmer(ctx, farmer, buyer, p, placed)
	return placed, nil
}

func (h *PlaceOrderCommandHandler) notifyFarmer(
	ctx context.Context,
	farmer, buyer *user.User,
	p *product.Product,
	placed *order.Order,
) {
	h.notifier.send(ctx, farmer.ID(),
		"New Order Received",
		fmt.Sprintf("You have received a new order for %d %s from %s", placed.Quantity(), p.Name(), buyer.Name()),
		notification.TypeOrder,
		notification.Metadata{
			"order_id":   placed.ID().String(),
			"product_id": p.ID().String(),
			"buyer_id":   buyer.ID().String(),
			"quantity":   placed.Quantity(),
		},
	)
}
