package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllArticlesQueryHandler reads the catalog, sorted by reference.
type GetAllArticlesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllArticlesQueryHandler(db *gorm.DB) GetAllArticlesQueryHandler {
	return GetAllArticlesQueryHandler{db: db}
}

func (h GetAllArticlesQueryHandler) Handle(
	ctx context.Context,
	query GetAllArticlesQuery,
) ([]GetAllArticlesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			designation,
			purchase_price,
			sale_price,
			stock,
			category,
			vat_code
		FROM articles
		ORDER BY reference
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]GetAllArticlesQueryResponse, 0)

	for rows.Next() {
		var resp GetAllArticlesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Reference,
			&resp.Designation,
			&resp.PurchasePrice,
			&resp.SalePrice,
			&resp.Stock,
			&resp.Category,
			&resp.VATCode,
		); err != nil {
			return nil, err
		}

		resp.ID = id.String()

		articles = append(articles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
