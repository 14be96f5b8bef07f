// Package stationrepo provides lookups for pickup stations and delivery time
// slots. Both are reference data managed outside this core: order creation
// only needs existence checks.
package stationrepo

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StationDTO represents the database structure for pickup stations.
type StationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(128)"`
	Address string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for station entities.
func (StationDTO) TableName() string {
	return "stations"
}

// TimeSlotDTO represents the database structure for delivery time slots.
type TimeSlotDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label string    `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for time slot entities.
func (TimeSlotDTO) TableName() string {
	return "time_slots"
}

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Exists reports whether a station with the given identifier exists.
func (r *GormStationRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&StationDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GormTimeSlotRepository implements TimeSlotRepository using GORM.
type GormTimeSlotRepository struct {
	db *gorm.DB
}

// NewGormTimeSlotRepository creates a new GORM time slot repository.
func NewGormTimeSlotRepository(db *gorm.DB) *GormTimeSlotRepository {
	return &GormTimeSlotRepository{db: db}
}

// Exists reports whether a time slot with the given identifier exists.
func (r *GormTimeSlotRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TimeSlotDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
