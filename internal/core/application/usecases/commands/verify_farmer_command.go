package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyFarmerCommandIsNotConstructed = errors.New(
	"VerifyFarmerCommand must be created via NewVerifyFarmerCommand constructor",
)

// VerifyFarmerCommand grants (verified=true) or revokes a farmer's verification.
type VerifyFarmerCommand struct { //nolint:recvcheck //using for validation
	farmerID kernel.UUID
	actorID  kernel.UUID
	verified bool

	guard guard.ConstructorGuard
}

func NewVerifyFarmerCommand(farmerID, actorID kernel.UUID, verified bool) (VerifyFarmerCommand, error) {
	cmd := VerifyFarmerCommand{
		verified: verified,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFarmerID(farmerID),
		cmd.setActorID(actorID),
	); err != nil {
		return VerifyFarmerCommand{}, err
	}

	return cmd, nil
}

func (c VerifyFarmerCommand) Validate() error {
	return c.guard.Validate(ErrVerifyFarmerCommandIsNotConstructed)
}

func (c VerifyFarmerCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c VerifyFarmerCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c VerifyFarmerCommand) Verified() bool {
	return c.verified
}

func (c *VerifyFarmerCommand) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmerID", err)
	}
	c.farmerID = id
	return nil
}

func (c *VerifyFarmerCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	c.actorID = id
	return nil
}
