package queries

import (
	"context"
	"database/sql"
	"errors"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its client details.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query; errs.ErrObjectNotFound when the number is
// unknown.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	const querySQL = `
		SELECT
			o.number,
			o.client_no,
			c.name,
			c.first_name,
			c.postal_code,
			c.city,
			o.date,
			o.status
		FROM orders o
		JOIN clients c ON c.no = o.client_no
		WHERE o.number = ?
	`

	var resp GetOrderQueryResponse
	var statusCode string

	row := h.db.WithContext(ctx).Raw(querySQL, query.Number()).Row()
	if err := row.Scan(
		&resp.Number,
		&resp.ClientNo,
		&resp.ClientName,
		&resp.ClientFirst,
		&resp.PostalCode,
		&resp.City,
		&resp.Date,
		&statusCode,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"number", query.Number(), err)
		}
		return GetOrderQueryResponse{}, err
	}

	status, err := order.StatusFromCode(statusCode)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.StatusCode = status.Code()
	resp.StatusLabel = status.String()

	return resp, nil
}
