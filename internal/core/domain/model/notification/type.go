package notification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Type classifies what raised a notification.
type Type int

const (
	UnknownType Type = iota
	TypeOrder
	TypeSystem
	TypeAdmin
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		TypeOrder:   "order",
		TypeSystem:  "system",
		TypeAdmin:   "admin",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		TypeOrder:  "order",
		TypeSystem: "system",
		TypeAdmin:  "admin",
	}
}

func ParseType(s string) (Type, error) {
	for typ, name := range getValidTypeStrings() {
		if name == s {
			return typ, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a valid notification type", s))
}

func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
