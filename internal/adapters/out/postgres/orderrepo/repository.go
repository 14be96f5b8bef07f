package orderrepo

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// A duplicate order number surfaces as a conflict error so the caller can
// regenerate the number and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", dto.OrderNo, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("CourierID", "Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNo retrieves an order by its business order number.
func (r *GormOrderRepository) GetByOrderNo(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error) {
	return r.getByOrderNo(ctx, orderNo, false)
}

// GetByOrderNoForUpdate retrieves an order by its business order number with a
// row-level lock held until the transaction ends. A concurrent transition on
// the same order blocks here and then observes the committed status.
func (r *GormOrderRepository) GetByOrderNoForUpdate(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error) {
	return r.getByOrderNo(ctx, orderNo, true)
}

func (r *GormOrderRepository) getByOrderNo(ctx context.Context, orderNo kernel.OrderNo, forUpdate bool) (*order.Order, error) {
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto OrderDTO
	if err := query.First(&dto, "order_no = ?", orderNo.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNo.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassignedInWaitingPickup retrieves orders waiting for pickup without a courier.
// Ordered by placement time so the oldest orders are assigned first. The rows
// are locked for the rest of the transaction; a cancel that committed between
// snapshot and lock drops the row from the result instead of being written
// back to waiting_pickup by the backfill.
func (r *GormOrderRepository) GetAllUnassignedInWaitingPickup(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("status = ? AND courier_id IS NULL", order.StatusWaitingPickup.String()).
		Order("order_time ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
