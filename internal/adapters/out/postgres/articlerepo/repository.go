package articlerepo

import (
	"context"
	"errors"

	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormArticleRepository implements ports.ArticleRepository using GORM.
type GormArticleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is satisfied by the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormArticleRepository creates a new GORM article repository.
func NewGormArticleRepository(db *gorm.DB, tracker aggregateTracker) *GormArticleRepository {
	return &GormArticleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item.
func (r *GormArticleRepository) Add(ctx context.Context, aggregate *article.Article) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("reference", dto.Reference, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog item.
func (r *GormArticleRepository) Update(ctx context.Context, aggregate *article.Article) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ArticleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("reference", dto.Reference, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("article", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog item by its identifier.
func (r *GormArticleRepository) Get(ctx context.Context, id kernel.UUID) (*article.Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("article", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByReference retrieves a catalog item by its business reference.
func (r *GormArticleRepository) GetByReference(ctx context.Context, reference string) (*article.Article, error) {
	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reference", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a catalog item.
func (r *GormArticleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ArticleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("article", id.String())
	}

	return nil
}
