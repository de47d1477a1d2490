package historyrepo

import (
	"context"
	"errors"

	"gescom/internal/core/ports"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM. The
// history table holds snapshots rather than aggregates, so there is no
// tracker here.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// AddCancelledOrder appends one history row.
func (r *GormHistoryRepository) AddCancelledOrder(ctx context.Context, record ports.CancelledOrderRecord) error {
	dto := fromRecord(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("order number", dto.OrderNumber, err)
		}
		return err
	}

	return nil
}

// IsArchived reports whether an order already has a history row.
func (r *GormHistoryRepository) IsArchived(ctx context.Context, orderNumber int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CancelledOrderDTO{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
