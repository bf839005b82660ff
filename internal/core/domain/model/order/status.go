package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// State transitions are linear and never go backwards:
//
//	Pending ──> Confirmed ──> Delivered
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly placed order.
	Pending

	// Confirmed means the farmer accepted the order.
	Confirmed

	// Delivered is final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Delivered: "delivered",
	}
}

// nextStatus maps each status to the only status it may move to.
func nextStatus() map[Status]Status {
	//nolint:exhaustive // Delivered and Unknown have no successor
	return map[Status]Status{
		Pending:   Confirmed,
		Confirmed: Delivered,
	}
}

// ParseStatus converts the wire name ("pending", "confirmed", "delivered") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Pending, Confirmed or Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo returns requested if it is the direct successor of s.
// Any other request, including a repeat of the current status, yields *InvalidTransitionError.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if next, ok := nextStatus()[s]; ok && next == requested {
		return requested, nil
	}
	return Unknown, NewInvalidTransitionError(s, requested)
}

func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(Confirmed)
}

func (s Status) Deliver() (Status, error) {
	return s.TransitionTo(Delivered)
}

// InvalidTransitionError reports a status change outside the allowed pending -> confirmed -> delivered path.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func NewInvalidTransitionError(current, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current:   current,
		Requested: requested,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change order from %s to %s", ErrInvalidTransition, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
