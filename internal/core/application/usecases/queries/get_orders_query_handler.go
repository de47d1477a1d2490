package queries

import (
	"context"

	"gescom/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order board from the database. Uses
// direct SQL for the read side; aggregates are never rehydrated here.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order board queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results carry the client identity from a join
// and are sorted by order number.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSQL = `
		SELECT
			o.number,
			o.client_no,
			c.name,
			c.first_name,
			o.date,
			o.status
		FROM orders o
		JOIN clients c ON c.no = o.client_no
	`

	tx := h.db.WithContext(ctx)

	var rows *gorm.DB
	if query.HasFilter() {
		rows = tx.Raw(baseSQL+" WHERE o.status = ? ORDER BY o.number", query.Status().Code())
	} else {
		rows = tx.Raw(baseSQL + " ORDER BY o.number")
	}

	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for sqlRows.Next() {
		var resp GetOrdersQueryResponse
		var statusCode string

		if err = sqlRows.Scan(
			&resp.Number,
			&resp.ClientNo,
			&resp.ClientName,
			&resp.ClientFirst,
			&resp.Date,
			&statusCode,
		); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromCode(statusCode)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.StatusCode = status.Code()
		resp.StatusLabel = status.String()

		orders = append(orders, resp)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
