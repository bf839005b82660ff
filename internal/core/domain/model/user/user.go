package user

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a marketplace participant. Only farmers carry a meaningful verified flag;
// it gates whether their products can be ordered.
type User struct {
	id       kernel.UUID
	name     string
	email    string
	role     Role
	verified bool

	isConstructed bool
}

// NewUser registers a user. Farmers start unverified.
func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	return RestoreUser(id, name, email, role, false)
}

// RestoreUser rebuilds a user from persisted state. verified is ignored for non-farmers.
func RestoreUser(id kernel.UUID, name, email string, role Role, verified bool) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.verified = verified && role == Farmer

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsVerified() bool {
	return u.verified
}

func (u *User) HasRole(role Role) bool {
	return u.role == role
}

// CanSell returns ErrFarmerIsNotVerified unless the user is a verified farmer.
func (u *User) CanSell() error {
	if u.role != Farmer || !u.verified {
		return ErrFarmerIsNotVerified
	}
	return nil
}

// SetVerified grants or revokes farmer verification.
func (u *User) SetVerified(verified bool) error {
	if u.role != Farmer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("only farmers can be verified, user is %s", u.role))
	}
	u.verified = verified
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q has no @", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
