package orderrepo

import (
	"context"
	"errors"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
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

// Add saves a new order and assigns the database serial to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("order number", dto.Number, err)
		}
		return err
	}

	if err := aggregate.AssignNumber(dto.Number); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Update saves an existing order, in practice its status.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Updates(map[string]any{
			"client_no": dto.ClientNo,
			"date":      dto.Date,
			"status":    dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order number", dto.Number)
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Get retrieves an order by its number.
func (r *GormOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order number", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllReady retrieves orders in the Prête status.
func (r *GormOrderRepository) GetAllReady(ctx context.Context) ([]*order.Order, error) {
	return r.findByStatus(ctx, order.Prete.Code())
}

// GetAllCancelledUnarchived retrieves cancelled orders with no history row
// yet. The nightly archiver drains this set.
func (r *GormOrderRepository) GetAllCancelledUnarchived(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{order.Annulee.Code(), order.AnnuleeLivree.Code()}).
		Where("number NOT IN (SELECT order_number FROM cancelled_orders_history)").
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) findByStatus(ctx context.Context, code string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos, "status = ?", code).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
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
