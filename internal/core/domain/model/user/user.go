package user

import (
	"errors"
	"fmt"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrUserIsBlacklisted is returned when a blacklisted account attempts to spend a credit.
	ErrUserIsBlacklisted = errors.New("user is blacklisted and cannot place orders")

	// ErrInsufficientCredit is returned when a debit is attempted against a zero balance.
	ErrInsufficientCredit = errors.New("insufficient credit balance")
)

// User is the aggregate that owns the order-credit balance.
//
// Invariants:
//   - creditBalance is never negative
//   - a debit removes exactly one credit and only succeeds on a positive balance
//   - blacklisted users never debit, regardless of balance
//
// The aggregate does not serialize concurrent access by itself: callers must
// load the user with a row-level lock (UserRepository.GetForUpdate) inside the
// same transaction that persists the mutation, so that the read-modify-write
// of the balance cannot interleave with another request for the same user.
type User struct {
	// id is the opaque identity key issued upstream
	id kernel.UserID

	// userType classifies the account (normal, vip, blacklisted)
	userType Type

	// creditBalance is the number of order credits the user holds
	creditBalance int

	// guard ensures the user was created via a constructor
	guard guard.ConstructorGuard
}

// NewUser creates a user with a zero credit balance.
//
// Parameters:
//   - id: opaque identity key (must be non-empty)
//   - userType: account classification (must be a valid Type)
//
// Returns the created user, or a validation error if any parameter is invalid.
func NewUser(id kernel.UserID, userType Type) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setType(userType),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistent storage, including the
// stored credit balance. Used by repositories only.
func RestoreUser(id kernel.UserID, userType Type, creditBalance int) (*User, error) {
	u, err := NewUser(id, userType)
	if err != nil {
		return nil, err
	}

	if creditBalance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("creditBalance",
			fmt.Errorf("%d is negative", creditBalance))
	}
	u.creditBalance = creditBalance

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their identity key.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's identity key.
func (u *User) ID() kernel.UserID {
	return u.id
}

// Type returns the account classification.
func (u *User) Type() Type {
	return u.userType
}

// CreditBalance returns the current number of order credits.
func (u *User) CreditBalance() int {
	return u.creditBalance
}

// IsBlacklisted reports whether the account is barred from placing orders.
func (u *User) IsBlacklisted() bool {
	return u.userType == TypeBlacklisted
}

// DebitCredit spends exactly one order credit.
//
// Fails with ErrUserIsBlacklisted for blacklisted accounts and with
// ErrInsufficientCredit when the balance is zero. On success the balance
// decreases by one and can never become negative.
func (u *User) DebitCredit() error {
	if u.IsBlacklisted() {
		return ErrUserIsBlacklisted
	}
	if u.creditBalance <= 0 {
		return ErrInsufficientCredit
	}

	u.creditBalance--
	return nil
}

// AddCredits grants amount order credits (amount must be at least 1).
// Used by recharge confirmation and by the one-credit refund on cancellation.
func (u *User) AddCredits(amount int) error {
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	u.creditBalance += amount
	return nil
}

func (u *User) setID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setType(userType Type) error {
	if err := userType.Validate(); err != nil {
		return err
	}
	u.userType = userType
	return nil
}
