package services

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
)

var (
	// ErrForbiddenOwner is returned when the actor does not own the product an operation targets.
	ErrForbiddenOwner = errors.New("forbidden: not the owner of the product")

	// ErrAccessDenied is returned when the actor may not see an order.
	ErrAccessDenied = errors.New("access denied")
)

// Actor is the acting user as seen by the access rules: an id and a role.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// ActorOf builds the Actor for a loaded user.
func ActorOf(u *user.User) Actor {
	return Actor{ID: u.ID(), Role: u.Role()}
}

// OrderScope restricts an order listing. A nil field means no restriction on it;
// both nil means every order is visible.
type OrderScope struct {
	BuyerID  *kernel.UUID
	FarmerID *kernel.UUID
}

// IsUnrestricted reports whether the scope covers all orders.
func (s OrderScope) IsUnrestricted() bool {
	return s.BuyerID == nil && s.FarmerID == nil
}

// OrderAccessPolicy decides who may place, transition, view and list orders, verify
// farmers and edit products. Every role dispatch is an exhaustive switch over user.Role.
//
// Business rules:
//   - only buyers place orders
//   - only the farmer owning the product transitions an order or edits the product,
//     whatever their role
//   - an order is visible to its buyer, the owning farmer and admins
//   - only admins verify farmers
type OrderAccessPolicy struct{}

func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// CanPlace returns *user.ForbiddenRoleError unless the actor is a buyer.
func (OrderAccessPolicy) CanPlace(actor Actor) error {
	switch actor.Role {
	case user.Buyer:
		return nil
	case user.Farmer, user.Admin, user.UnknownRole:
		return user.NewForbiddenRoleError(actor.Role, "place orders")
	default:
		return user.NewForbiddenRoleError(actor.Role, "place orders")
	}
}

// CanTransition returns ErrForbiddenOwner unless actorID owns p.
func (OrderAccessPolicy) CanTransition(actorID kernel.UUID, p *product.Product) error {
	if !p.IsOwnedBy(actorID) {
		return ErrForbiddenOwner
	}
	return nil
}

// CanEditProduct applies the same ownership rule as CanTransition.
func (o OrderAccessPolicy) CanEditProduct(actorID kernel.UUID, p *product.Product) error {
	return o.CanTransition(actorID, p)
}

// CanView returns ErrAccessDenied unless the actor is the order's buyer, the farmer
// owning its product, or an admin.
func (OrderAccessPolicy) CanView(actor Actor, buyerID, farmerID kernel.UUID) error {
	switch actor.Role {
	case user.Buyer:
		if actor.ID.IsEqual(buyerID) {
			return nil
		}
	case user.Farmer:
		if actor.ID.IsEqual(farmerID) {
			return nil
		}
	case user.Admin:
		return nil
	case user.UnknownRole:
	}
	return ErrAccessDenied
}

// Scope returns the listing restriction for the actor.
func (OrderAccessPolicy) Scope(actor Actor) (OrderScope, error) {
	id := actor.ID
	switch actor.Role {
	case user.Buyer:
		return OrderScope{BuyerID: &id}, nil
	case user.Farmer:
		return OrderScope{FarmerID: &id}, nil
	case user.Admin:
		return OrderScope{}, nil
	case user.UnknownRole:
		return OrderScope{}, user.NewForbiddenRoleError(actor.Role, "list orders")
	default:
		return OrderScope{}, user.NewForbiddenRoleError(actor.Role, "list orders")
	}
}

// CanVerify returns *user.ForbiddenRoleError unless the actor is an admin.
func (OrderAccessPolicy) CanVerify(actor Actor) error {
	switch actor.Role {
	case user.Admin:
		return nil
	case user.Buyer, user.Farmer, user.UnknownRole:
		return user.NewForbiddenRoleError(actor.Role, "verify farmers")
	default:
		return user.NewForbiddenRoleError(actor.Role, "verify farmers")
	}
}
