// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index: an insert that collides with an
// existing number fails, and the caller regenerates the number and retries.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNo         string          `gorm:"type:varchar(18);uniqueIndex"`
	UserID          string          `gorm:"type:varchar(64);index:idx_orders_user_status"`
	StationID       uuid.UUID       `gorm:"type:uuid"`
	TimeSlotID      uuid.UUID       `gorm:"type:uuid"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	PickupCode      string          `gorm:"type:varchar(32)"`
	ItemDescription string          `gorm:"type:varchar(255)"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          string          `gorm:"type:varchar(24);index:idx_orders_user_status"`
	OrderTime       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNo:         aggregate.OrderNo().String(),
		UserID:          aggregate.UserID().String(),
		StationID:       aggregate.StationID().Bytes(),
		TimeSlotID:      aggregate.TimeSlotID().Bytes(),
		CourierID:       courierID,
		PickupCode:      aggregate.PickupCode(),
		ItemDescription: aggregate.ItemDescription(),
		Amount:          aggregate.Amount(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNo, err := kernel.OrderNoFromString(dto.OrderNo)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewUserID(dto.UserID)
	if err != nil {
		return nil, err
	}

	stationID, err := kernel.UUIDFromBytes(dto.StationID[:])
	if err != nil {
		return nil, err
	}

	timeSlotID, err := kernel.UUIDFromBytes(dto.TimeSlotID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, orderNo, userID, stationID, timeSlotID, courierID,
		dto.PickupCode, dto.ItemDescription, dto.Amount, status, dto.OrderTime,
	)
}
