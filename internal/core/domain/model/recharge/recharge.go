package recharge

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
	// ErrRecordIsNotConstructed is returned when a RechargeRecord was not created
	// through the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("RechargeRecord must be created via NewRecord or RestoreRecord constructor")

	// ErrAlreadyFinalized is returned when confirming or failing a record that
	// already reached a terminal status. Payment providers retry callbacks, so
	// this is an expected condition, not a bug.
	ErrAlreadyFinalized = errors.New("recharge record is already finalized")

	// ErrExternalRefIsRequired is returned when confirming without an external transaction reference.
	ErrExternalRefIsRequired = errs.NewValueIsRequiredError("externalRef")
)

// RechargeRecord is the aggregate for a single top-up attempt.
//
// Invariants:
//   - created in StatusPending with no external reference
//   - leaves StatusPending exactly once, to StatusSuccess (Confirm) or
//     StatusFailed (Fail)
//   - the external reference and completion time are set only on Confirm
//
// The corresponding ledger credit is the use case's responsibility and must
// commit in the same transaction as the success flip.
type RechargeRecord struct {
	// id is the record identifier
	id kernel.UUID

	// userID is the account being topped up
	userID kernel.UserID

	// amount is the money paid, matching a configured plan
	amount decimal.Decimal

	// creditsGranted is the number of credits the matched plan grants
	creditsGranted int

	// status is the reconciliation state
	status Status

	// externalRef is the payment provider's transaction reference (nil until confirmed)
	externalRef *string

	// createdAt is when the top-up was initiated
	createdAt time.Time

	// completedAt is when the record was finalized (nil while pending)
	completedAt *time.Time

	// guard ensures the record was created via a constructor
	guard guard.ConstructorGuard
}

// NewRecord creates a pending recharge record.
// The credits granted must already be resolved against the plan table.
func NewRecord(
	id kernel.UUID,
	userID kernel.UserID,
	amount decimal.Decimal,
	creditsGranted int,
	createdAt time.Time,
) (*RechargeRecord, error) {
	r := &RechargeRecord{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setAmount(amount),
		r.setCreditsGranted(creditsGranted),
	); err != nil {
		return nil, err
	}
	r.createdAt = createdAt

	return r, nil
}

// RestoreRecord reconstructs a recharge record from persistent storage.
// Used by repositories only.
func RestoreRecord(
	id kernel.UUID,
	userID kernel.UserID,
	amount decimal.Decimal,
	creditsGranted int,
	status Status,
	externalRef *string,
	createdAt time.Time,
	completedAt *time.Time,
) (*RechargeRecord, error) {
	r, err := NewRecord(id, userID, amount, creditsGranted, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	r.externalRef = externalRef
	r.completedAt = completedAt

	return r, nil
}

// Validate ensures the record was properly constructed.
func (r *RechargeRecord) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// IsEqual compares two records by identifier.
func (r *RechargeRecord) IsEqual(other *RechargeRecord) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record identifier.
func (r *RechargeRecord) ID() kernel.UUID {
	return r.id
}

// UserID returns the account being topped up.
func (r *RechargeRecord) UserID() kernel.UserID {
	return r.userID
}

// Amount returns the money paid.
func (r *RechargeRecord) Amount() decimal.Decimal {
	return r.amount
}

// CreditsGranted returns the credits the matched plan grants.
func (r *RechargeRecord) CreditsGranted() int {
	return r.creditsGranted
}

// Status returns the reconciliation state.
func (r *RechargeRecord) Status() Status {
	return r.status
}

// ExternalRef returns the payment provider's transaction reference,
// or nil while the record is pending.
func (r *RechargeRecord) ExternalRef() *string {
	return r.externalRef
}

// CreatedAt returns when the top-up was initiated.
func (r *RechargeRecord) CreatedAt() time.Time {
	return r.createdAt
}

// CompletedAt returns when the record was finalized, or nil while pending.
func (r *RechargeRecord) CompletedAt() *time.Time {
	return r.completedAt
}

// Confirm finalizes the record as successful, storing the external payment
// reference and the completion time. Fails with ErrAlreadyFinalized if the
// record already left StatusPending.
func (r *RechargeRecord) Confirm(externalRef string, at time.Time) error {
	if externalRef == "" {
		return ErrExternalRefIsRequired
	}
	if r.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinalized, r.status)
	}

	r.status = StatusSuccess
	r.externalRef = &externalRef
	r.completedAt = &at
	return nil
}

// Fail finalizes the record as failed (e.g. the payment never arrived before
// the expiry deadline). Fails with ErrAlreadyFinalized if the record already
// left StatusPending.
func (r *RechargeRecord) Fail(at time.Time) error {
	if r.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinalized, r.status)
	}

	r.status = StatusFailed
	r.completedAt = &at
	return nil
}

func (r *RechargeRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *RechargeRecord) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *RechargeRecord) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not positive", amount))
	}
	r.amount = amount
	return nil
}

func (r *RechargeRecord) setCreditsGranted(creditsGranted int) error {
	if creditsGranted < 1 {
		return errs.NewValueIsInvalidErrorWithCause("creditsGranted",
			fmt.Errorf("%d is not greater than 0", creditsGranted))
	}
	r.creditsGranted = creditsGranted
	return nil
}
