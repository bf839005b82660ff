package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the closed set of marketplace roles. Code that dispatches on Role
// uses an exhaustive switch so a new role cannot be silently ignored.
type Role int

const (
	// UnknownRole catches uninitialized Role values.
	UnknownRole Role = iota
	Buyer
	Farmer
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Buyer:       "buyer",
		Farmer:      "farmer",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Buyer:  "buyer",
		Farmer: "farmer",
		Admin:  "admin",
	}
}

// ParseRole converts a stored or token role name to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
