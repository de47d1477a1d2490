package positionrepo

import (
	"context"
	"errors"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/position"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPositionRepository implements ports.PositionRepository using GORM.
type GormPositionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionRepository {
	return &GormPositionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new position definition. A duplicate code surfaces as
// errs.ErrDuplicateKey.
func (r *GormPositionRepository) Add(ctx context.Context, aggregate *position.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("position code", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing position definition.
func (r *GormPositionRepository) Update(ctx context.Context, aggregate *position.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PositionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("position", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a position by its identifier.
func (r *GormPositionRepository) Get(ctx context.Context, id kernel.UUID) (*position.Position, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("position", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a position by its business code.
func (r *GormPositionRepository) GetByCode(ctx context.Context, code string) (*position.Position, error) {
	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("position code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a position definition. The staff count guard runs in the
// command handler before this is reached.
func (r *GormPositionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PositionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("position", id.String())
	}

	return nil
}
