package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a requested status change is not in
// the transition table for the order's current status.
var ErrIllegalTransition = errors.New("illegal order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	WaitingPickup ──┬──> WaitingDelivery ──┬──> WaitingPayment ──> Completed
//	                │                      │          ^
//	                │                      └──> InCustody
//	                └──> Cancelled
//
// Cancelled and Completed are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusWaitingPickup is the initial status: the courier has not yet
	// collected the parcel from the station.
	StatusWaitingPickup

	// StatusWaitingDelivery means the parcel was picked up and is on its way.
	StatusWaitingDelivery

	// StatusInCustody means the parcel is held at the destination for the
	// recipient (e.g. left with a concierge) pending payment.
	StatusInCustody

	// StatusWaitingPayment means delivery happened and payment is due.
	StatusWaitingPayment

	// StatusCancelled is a terminal status reached by cancelling a
	// not-yet-picked-up order. Cancellation refunds the order credit.
	StatusCancelled

	// StatusCompleted is a terminal status reached after payment.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusWaitingPickup:   "waiting_pickup",
		StatusWaitingDelivery: "waiting_delivery",
		StatusInCustody:       "in_custody",
		StatusWaitingPayment:  "waiting_payment",
		StatusCancelled:       "cancelled",
		StatusCompleted:       "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusWaitingPickup:   "waiting_pickup",
		StatusWaitingDelivery: "waiting_delivery",
		StatusInCustody:       "in_custody",
		StatusWaitingPayment:  "waiting_payment",
		StatusCancelled:       "cancelled",
		StatusCompleted:       "completed",
	}
}

// getTransitions returns the allowed target set for every status.
// This table is the single enforcement point for transition legality.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusWaitingPickup:   {StatusCancelled, StatusWaitingDelivery},
		StatusWaitingDelivery: {StatusWaitingPayment, StatusInCustody},
		StatusInCustody:       {StatusWaitingPayment},
		StatusWaitingPayment:  {StatusCompleted},
		StatusCancelled:       {},
		StatusCompleted:       {},
	}
}

// StatusFromString parses the persisted string form of a status.
// This is the only place the store's string representation is interpreted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid order status", s)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid order status", s)
	}
	return nil
}

// String returns the persisted string form of the status.
// Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo reports whether target is in the allowed set for s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table and returns
// the new status, or ErrIllegalTransition with the offending pair.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}
	return target, nil
}
