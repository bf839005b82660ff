package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// VerifyFarmerCommandHandler lets an admin grant or revoke a farmer's verification.
// Only verified farmers' products can be ordered. The farmer gets an admin notification.
type VerifyFarmerCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.OrderAccessPolicy
	notifier   notifier
}

func NewVerifyFarmerCommandHandler(
	uowFactory UserUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) VerifyFarmerCommandHandler {
	return VerifyFarmerCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
		notifier:   notifier{sink: sink, logger: logger.With("component", "verify_farmer")},
	}
}

func (h *VerifyFarmerCommandHandler) Handle(ctx context.Context, cmd VerifyFarmerCommand) (*user.User, error) {
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

	repo := uow.UserRepository()
	admin, err := repo.Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, storageFailure("get actor", err)
	}

	if err = h.policy.CanVerify(services.ActorOf(admin)); err != nil {
		return nil, err
	}

	farmer, err := repo.Get(ctx, cmd.FarmerID())
	if err != nil {
		return nil, storageFailure("get farmer", err)
	}

	if err = farmer.SetVerified(cmd.Verified()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, farmer); err != nil {
		return nil, storageFailure("update farmer", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageFailure("commit verification", err)
	}

	title, message := "Account Verified", "Your farmer account has been verified. Buyers can now order your products."
	if !farmer.IsVerified() {
		title, message = "Account Verification Revoked", "Your farmer account verification has been revoked. Your products cannot be ordered until you are verified again."
	}
	h.notifier.send(ctx, farmer.ID(), title, message, notification.TypeAdmin, notification.Metadata{
		"verified":    farmer.IsVerified(),
		"verified_by": admin.ID().String(),
	})

	return farmer, nil
}
