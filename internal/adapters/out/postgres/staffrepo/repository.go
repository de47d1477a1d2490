package staffrepo

import (
	"context"
	"errors"

	"gescom/internal/core/domain/model/staff"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff member and assigns the database serial to the
// aggregate. A duplicate login surfaces as errs.ErrDuplicateKey.
func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("login", dto.Login, err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing staff member.
func (r *GormStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StaffDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff id", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a staff member by its identifier.
func (r *GormStaffRepository) Get(ctx context.Context, id int64) (*staff.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLogin retrieves a staff member by login.
func (r *GormStaffRepository) GetByLogin(ctx context.Context, login string) (*staff.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("login", login)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountByPositionCode counts staff attached to one position.
func (r *GormStaffRepository) CountByPositionCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("position_code = ?", code).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes a staff record.
func (r *GormStaffRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&StaffDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff id", id)
	}

	return nil
}
