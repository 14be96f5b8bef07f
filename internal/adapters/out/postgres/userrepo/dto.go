// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The credit balance column carries the ledger: it is only ever mutated under
// a row-level lock, so a CHECK constraint keeping it non-negative is a backstop,
// not the primary guard.
type UserDTO struct {
	ID            string `gorm:"type:varchar(64);primaryKey"`
	Type          string `gorm:"type:varchar(16);index"`
	CreditBalance int    `gorm:"check:credit_balance >= 0"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:            aggregate.ID().String(),
		Type:          aggregate.Type().String(),
		CreditBalance: aggregate.CreditBalance(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return nil, err
	}

	userType, err := user.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, userType, dto.CreditBalance)
}
