package queries

import (
	"errors"

	"gescom/internal/pkg/guard"
)

var ErrGetAllArticlesQueryIsNotConstructed = errors.New(
	"GetAllArticlesQuery must be created via NewGetAllArticlesQuery constructor",
)

// GetAllArticlesQuery retrieves the full catalog.
type GetAllArticlesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllArticlesQuery() GetAllArticlesQuery {
	return GetAllArticlesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllArticlesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllArticlesQueryIsNotConstructed)
}

// GetAllArticlesQueryResponse is one catalog row.
type GetAllArticlesQueryResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	Designation   string  `json:"designation"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Stock         int     `json:"stock"`
	Category      string  `json:"category"`
	VATCode       int     `json:"vat_code"`
}
