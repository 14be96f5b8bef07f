// Package rechargerepo provides data transfer objects and mapping functions for
// recharge record persistence.
package rechargerepo

import (
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/recharge"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RechargeDTO represents the database structure for persisting recharge records.
// The external reference carries a unique index: the same provider transaction
// can never confirm two records.
type RechargeDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         string          `gorm:"type:varchar(64);index:idx_recharges_user_status"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreditsGranted int
	Status         string     `gorm:"type:varchar(16);index:idx_recharges_user_status"`
	ExternalRef    *string    `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt      time.Time  `gorm:"index"`
	CompletedAt    *time.Time
}

// TableName specifies the database table name for recharge records.
func (RechargeDTO) TableName() string {
	return "recharges"
}

// fromDomain converts a recharge record to its database representation.
func fromDomain(aggregate *recharge.RechargeRecord) RechargeDTO {
	return RechargeDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.UserID().String(),
		Amount:         aggregate.Amount(),
		CreditsGranted: aggregate.CreditsGranted(),
		Status:         aggregate.Status().String(),
		ExternalRef:    aggregate.ExternalRef(),
		CreatedAt:      aggregate.CreatedAt(),
		CompletedAt:    aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a recharge record aggregate.
func toDomain(dto RechargeDTO) (*recharge.RechargeRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewUserID(dto.UserID)
	if err != nil {
		return nil, err
	}

	status, err := recharge.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return recharge.RestoreRecord(
		id, userID, dto.Amount, dto.CreditsGranted,
		status, dto.ExternalRef, dto.CreatedAt, dto.CompletedAt,
	)
}
