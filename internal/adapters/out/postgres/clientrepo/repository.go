package clientrepo

import (
	"context"
	"errors"

	"gescom/internal/core/domain/model/client"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client and assigns the database serial to the aggregate.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("client number", dto.No, err)
		}
		return err
	}

	if err := aggregate.AssignNo(dto.No); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.No(), aggregate)
	return nil
}

// Update saves an existing client.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("no = ?", dto.No).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client number", dto.No)
	}

	r.tracker.TrackAggregate(aggregate.No(), aggregate)
	return nil
}

// Get retrieves a client by its number.
func (r *GormClientRepository) Get(ctx context.Context, no int64) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "no = ?", no).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client number", no)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a client record.
func (r *GormClientRepository) Delete(ctx context.Context, no int64) error {
	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "no = ?", no)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client number", no)
	}

	return nil
}
