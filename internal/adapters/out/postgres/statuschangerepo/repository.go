package statuschangerepo

import (
	"context"
	"errors"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/statuschange"
	"handmade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusChangeRepository implements StatusChangeRepository using GORM.
type GormStatusChangeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusChangeRepository creates a new GORM status-change repository.
func NewGormStatusChangeRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusChangeRepository {
	return &GormStatusChangeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new status-change record to the database.
func (r *GormStatusChangeRepository) Add(ctx context.Context, aggregate *statuschange.StatusChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing status-change record to the database.
// Uses Select("*") so NULL-able deletion columns are written even when the
// record transitions from active to deleted.
func (r *GormStatusChangeRepository) Update(ctx context.Context, aggregate *statuschange.StatusChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StatusChangeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a status-change record by ID regardless of soft-delete state.
func (r *GormStatusChangeRepository) Get(ctx context.Context, id kernel.UUID) (*statuschange.StatusChange, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusChangeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("statusChangeId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestForOrder retrieves the non-deleted record with the greatest change
// time for the given order.
func (r *GormStatusChangeRepository) GetLatestForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*statuschange.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND deleted_time IS NULL", orderID.Bytes()).
		Order("change_time DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestForOrderExcluding behaves like GetLatestForOrder but ignores the
// record with the given id, so an update is not compared against itself.
func (r *GormStatusChangeRepository) GetLatestForOrderExcluding(
	ctx context.Context,
	orderID kernel.UUID,
	excludeID kernel.UUID,
) (*statuschange.StatusChange, error) {
	if err := errors.Join(orderID.Validate(), excludeID.Validate()); err != nil {
		return nil, err
	}

	var dto StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND id <> ? AND deleted_time IS NULL", orderID.Bytes(), excludeID.Bytes()).
		Order("change_time DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
