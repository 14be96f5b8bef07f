package order

import (
	"errors"
	"fmt"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCourierAlreadyAssigned is returned when assigning a courier to an order
	// that already has one. The assignment is immutable once made.
	ErrCourierAlreadyAssigned = errors.New("order already has a courier assigned")

	// ErrPickupCodeIsRequired is returned when attempting to create an order without a pickup code.
	ErrPickupCodeIsRequired = errs.NewValueIsRequiredError("pickupCode")

	// ErrItemDescriptionIsRequired is returned when attempting to create an order without an item description.
	ErrItemDescriptionIsRequired = errs.NewValueIsRequiredError("itemDescription")
)

// Order is the aggregate root for a delivery order.
//
// Invariants:
//   - every order is created in StatusWaitingPickup by debiting exactly one
//     credit from its owner (enforced by the create-order use case: the debit
//     and the order insert commit in one transaction)
//   - courierID is set at most once; nil means no courier was available at
//     creation and a later assignment may fill it
//   - status changes only through TransitionTo, so the transition table in
//     status.go is the single legality authority
type Order struct {
	// id is the surrogate identifier used for persistence
	id kernel.UUID

	// orderNo is the business-facing order number, unique across all orders
	orderNo kernel.OrderNo

	// userID is the owner who paid the credit for this order
	userID kernel.UserID

	// stationID references the station the parcel is collected from
	stationID kernel.UUID

	// timeSlotID references the agreed delivery time slot
	timeSlotID kernel.UUID

	// courierID is the assigned courier (nil if none was available)
	courierID *kernel.UUID

	// pickupCode is the code the courier uses to collect the parcel
	pickupCode string

	// itemDescription describes the parcel contents
	itemDescription string

	// amount is the delivery fee in currency units
	amount decimal.Decimal

	// status is the current lifecycle state
	status Status

	// orderTime is when the order was placed
	orderTime time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an order in StatusWaitingPickup with no courier assigned.
//
// Parameters:
//   - id: surrogate identifier (must be a valid UUID)
//   - orderNo: generated order number (must be non-empty)
//   - userID: owner (must be non-empty)
//   - stationID, timeSlotID: referenced station and time slot (must be valid UUIDs;
//     their existence is checked by the use case, not here)
//   - pickupCode, itemDescription: required free-form fields
//   - amount: delivery fee (must not be negative)
//   - orderTime: placement timestamp
func NewOrder(
	id kernel.UUID,
	orderNo kernel.OrderNo,
	userID kernel.UserID,
	stationID kernel.UUID,
	timeSlotID kernel.UUID,
	pickupCode string,
	itemDescription string,
	amount decimal.Decimal,
	orderTime time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusWaitingPickup,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setUserID(userID),
		o.setStationID(stationID),
		o.setTimeSlotID(timeSlotID),
		o.setPickupCode(pickupCode),
		o.setItemDescription(itemDescription),
		o.setAmount(amount),
	); err != nil {
		return nil, err
	}
	o.orderTime = orderTime

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage in its stored
// status, including an optional courier assignment. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	orderNo kernel.OrderNo,
	userID kernel.UserID,
	stationID kernel.UUID,
	timeSlotID kernel.UUID,
	courierID *kernel.UUID,
	pickupCode string,
	itemDescription string,
	amount decimal.Decimal,
	status Status,
	orderTime time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNo, userID, stationID, timeSlotID, pickupCode, itemDescription, amount, orderTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		o.courierID = courierID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their surrogate identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the business-facing order number.
func (o *Order) OrderNo() kernel.OrderNo {
	return o.orderNo
}

// UserID returns the owner of the order.
func (o *Order) UserID() kernel.UserID {
	return o.userID
}

// StationID returns the referenced station.
func (o *Order) StationID() kernel.UUID {
	return o.stationID
}

// TimeSlotID returns the referenced delivery time slot.
func (o *Order) TimeSlotID() kernel.UUID {
	return o.timeSlotID
}

// Courier returns the assigned courier's ID, or nil if none is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// PickupCode returns the parcel collection code.
func (o *Order) PickupCode() string {
	return o.pickupCode
}

// ItemDescription returns the parcel contents description.
func (o *Order) ItemDescription() string {
	return o.itemDescription
}

// Amount returns the delivery fee.
func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// OrderTime returns the placement timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// AssignCourier records the courier responsible for this order.
//
// Assignment is allowed only while the order is waiting for pickup and only
// once: a second assignment fails with ErrCourierAlreadyAssigned. Orders
// created while no courier was available carry a nil courier and are picked
// up by the backfill job, which calls this method.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrCourierAlreadyAssigned
	}
	if o.status != StatusWaitingPickup {
		return fmt.Errorf("%w: cannot assign courier in status %s", ErrIllegalTransition, o.status)
	}

	o.courierID = &courierID
	return nil
}

// TransitionTo moves the order to target if the transition table allows it.
// Crediting the refund on cancellation is the caller's responsibility and
// must commit in the same transaction as the status write.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	o.stationID = stationID
	return nil
}

func (o *Order) setTimeSlotID(timeSlotID kernel.UUID) error {
	if err := timeSlotID.Validate(); err != nil {
		return err
	}
	o.timeSlotID = timeSlotID
	return nil
}

func (o *Order) setPickupCode(pickupCode string) error {
	if pickupCode == "" {
		return ErrPickupCodeIsRequired
	}
	o.pickupCode = pickupCode
	return nil
}

func (o *Order) setItemDescription(itemDescription string) error {
	if itemDescription == "" {
		return ErrItemDescriptionIsRequired
	}
	o.itemDescription = itemDescription
	return nil
}

func (o *Order) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	o.amount = amount
	return nil
}
