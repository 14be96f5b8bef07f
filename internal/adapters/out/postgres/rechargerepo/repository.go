package rechargerepo

import (
	"context"
	"errors"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormRechargeRepository implements RechargeRepository using GORM.
type GormRechargeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormRechargeRepository creates a new GORM recharge repository.
func NewGormRechargeRepository(db *gorm.DB, tracker aggregateTracker) *GormRechargeRepository {
	return &GormRechargeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recharge record to the database.
func (r *GormRechargeRepository) Add(ctx context.Context, aggregate *recharge.RechargeRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("recharge", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the finalization of a recharge record to the database.
// The write is a compare-and-swap on the pending status: a record another
// transaction finalized in the meantime matches zero rows and the update
// fails with recharge.ErrAlreadyFinalized, so a racing confirm or expiry can
// never overwrite a terminal status or credit a second time. The unique index
// on external_ref additionally rejects a reference already stored on another
// record.
func (r *GormRechargeRepository) Update(ctx context.Context, aggregate *recharge.RechargeRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RechargeDTO{}).
		Where("id = ? AND status = ?", dto.ID, recharge.StatusPending.String()).
		Select("Status", "ExternalRef", "CompletedAt").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("recharge", aggregate.ID().String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recharge.ErrAlreadyFinalized
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a recharge record by ID.
func (r *GormRechargeRepository) Get(ctx context.Context, id kernel.UUID) (*recharge.RechargeRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RechargeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recharge", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExternalRef retrieves the record confirmed with the given payment reference.
func (r *GormRechargeRepository) GetByExternalRef(ctx context.Context, externalRef string) (*recharge.RechargeRecord, error) {
	if externalRef == "" {
		return nil, errs.NewValueIsRequiredError("externalRef")
	}

	var dto RechargeDTO
	if err := r.db.WithContext(ctx).First(&dto, "external_ref = ?", externalRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recharge", externalRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestPending retrieves the user's most recent pending record for the amount.
// Newest wins: created_at descending, then id descending as the tie-break.
func (r *GormRechargeRepository) GetLatestPending(
	ctx context.Context,
	userID kernel.UserID,
	amount decimal.Decimal,
) (*recharge.RechargeRecord, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto RechargeDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND amount = ?",
			userID.String(), recharge.StatusPending.String(), amount).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recharge", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingCreatedBefore retrieves pending records older than the deadline.
func (r *GormRechargeRepository) GetAllPendingCreatedBefore(ctx context.Context, deadline time.Time) ([]*recharge.RechargeRecord, error) {
	var dtos []RechargeDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", recharge.StatusPending.String(), deadline).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*recharge.RechargeRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
