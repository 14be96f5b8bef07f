package user

import (
	"fmt"

	"pickpoint/internal/pkg/errs"
)

// Type classifies a user account. Blacklisted accounts keep their balance but
// may never spend it.
type Type int

const (
	// TypeUnknown represents an invalid or undefined user type.
	// This value (0) helps catch uninitialized Type values.
	TypeUnknown Type = iota

	// TypeNormal is a regular account.
	TypeNormal

	// TypeVIP is a privileged account. VIP status does not change credit
	// semantics in this core; it only exists for downstream presentation.
	TypeVIP

	// TypeBlacklisted is an account barred from placing orders.
	TypeBlacklisted
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "unknown",
		TypeNormal:      "normal",
		TypeVIP:         "vip",
		TypeBlacklisted: "blacklisted",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeNormal:      "normal",
		TypeVIP:         "vip",
		TypeBlacklisted: "blacklisted",
	}
}

// TypeFromString parses the persisted string form of a user type.
// This is the only place the store's string representation is interpreted.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("userType",
		fmt.Errorf("%q is not a valid user type", s))
}

// Validate checks if the Type value is valid.
// Valid types are: TypeNormal, TypeVIP, TypeBlacklisted.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("userType",
			fmt.Errorf("%d is not a valid user type", t))
	}
	return nil
}

// String returns the persisted string form of the type.
// Implements fmt.Stringer; safe on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
