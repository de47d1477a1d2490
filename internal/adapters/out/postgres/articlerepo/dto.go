// Package articlerepo persists catalog items. The article reference
// carries a unique index; duplicates surface as errs.ErrDuplicateKey.
package articlerepo

import (
	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ArticleDTO is the database representation of a catalog item.
type ArticleDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference     string    `gorm:"uniqueIndex;not null"`
	Designation   string    `gorm:"not null"`
	PurchasePrice float64   `gorm:"not null"`
	SalePrice     float64   `gorm:"not null"`
	Stock         int       `gorm:"not null"`
	Category      string
	VATCode       int
}

// TableName overrides GORM's default naming to use "articles".
func (ArticleDTO) TableName() string {
	return "articles"
}

func fromDomain(aggregate *article.Article) ArticleDTO {
	return ArticleDTO{
		ID:            aggregate.ID().Bytes(),
		Reference:     aggregate.Reference(),
		Designation:   aggregate.Designation(),
		PurchasePrice: aggregate.PurchasePrice(),
		SalePrice:     aggregate.SalePrice(),
		Stock:         aggregate.Stock(),
		Category:      aggregate.Category(),
		VATCode:       aggregate.VATCode(),
	}
}

func toDomain(dto ArticleDTO) (*article.Article, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return article.RestoreArticle(
		id,
		dto.Reference,
		dto.Designation,
		dto.PurchasePrice,
		dto.SalePrice,
		dto.Stock,
		dto.Category,
		dto.VATCode,
	)
}
