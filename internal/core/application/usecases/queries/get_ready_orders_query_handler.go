package queries

import (
	"context"

	"gescom/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler reads schedulable orders from the database.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for ready order queries.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle executes the query. Only orders currently in the Prête status are
// returned, sorted by order number.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.client_no,
			c.name,
			c.first_name,
			o.date,
			c.postal_code,
			c.city
		FROM orders o
		JOIN clients c ON c.no = o.client_no
		WHERE o.status = ?
		ORDER BY o.number
	`, order.Prete.Code()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetReadyOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetReadyOrdersQueryResponse

		if err = rows.Scan(
			&resp.Number,
			&resp.ClientNo,
			&resp.ClientName,
			&resp.ClientFirst,
			&resp.Date,
			&resp.PostalCode,
			&resp.City,
		); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
