package user

import (
	"errors"
	"fmt"
)

var (
	// ErrForbiddenRole is the sentinel wrapped by ForbiddenRoleError.
	ErrForbiddenRole = errors.New("forbidden role")

	// ErrFarmerIsNotVerified is returned when an unverified farmer's products are ordered.
	ErrFarmerIsNotVerified = errors.New("farmer is not verified")
)

// ForbiddenRoleError reports an actor whose role does not permit Action.
type ForbiddenRoleError struct {
	Role   Role
	Action string
}

func NewForbiddenRoleError(role Role, action string) *ForbiddenRoleError {
	return &ForbiddenRoleError{
		Role:   role,
		Action: action,
	}
}

func (e *ForbiddenRoleError) Error() string {
	return fmt.Sprintf("%s: %s cannot %s", ErrForbiddenRole, e.Role, e.Action)
}

func (e *ForbiddenRoleError) Unwrap() error {
	return ErrForbiddenRole
}
