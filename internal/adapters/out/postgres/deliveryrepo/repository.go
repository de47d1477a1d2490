package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery. A second delivery for the same order violates
// the unique index and surfaces as errs.ErrDuplicateKey.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("order number", dto.OrderNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery, in practice its status.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by its identifier.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the delivery scheduled for one order, if any.
func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderNumber int64) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order number", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActive counts EnCours deliveries for the (carrier, calendar date,
// postal zone) triple. Matching is on the calendar date regardless of the
// stored time component.
func (r *GormDeliveryRepository) CountActive(
	ctx context.Context,
	date time.Time,
	carrierID int64,
	postalCode int,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("DATE(date) = DATE(?)", date).
		Where("carrier_id = ?", carrierID).
		Where("postal_code = ?", postalCode).
		Where("status = ?", delivery.EnCours.Code()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes a delivery record.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}
