package kernel

import "pickpoint/internal/pkg/errs"

// ErrUserIDIsRequired indicates an empty user identifier.
var ErrUserIDIsRequired = errs.NewValueIsRequiredError("userId")

// UserID is the opaque string identity key of a user. It is issued by the
// identity provider upstream of this core and is never parsed or generated
// here, only validated for presence.
//
// The zero value is invalid; construct with NewUserID.
type UserID struct {
	id string
}

// NewUserID wraps an externally issued user identifier.
// Returns ErrUserIDIsRequired for an empty string.
func NewUserID(id string) (UserID, error) {
	if id == "" {
		return UserID{}, ErrUserIDIsRequired
	}
	return UserID{id: id}, nil
}

// String returns the raw identifier.
func (u UserID) String() string {
	return u.id
}

// IsEqual compares two user identifiers.
func (u UserID) IsEqual(other UserID) bool {
	return u.id == other.id
}

// Validate checks the identifier is non-empty.
func (u UserID) Validate() error {
	if u.id == "" {
		return ErrUserIDIsRequired
	}
	return nil
}
