package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllClientsQueryHandler reads the client directory, sorted by name.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]GetAllClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			no,
			name,
			first_name,
			address,
			city,
			postal_code,
			phone,
			email
		FROM clients
		ORDER BY name, first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]GetAllClientsQueryResponse, 0)

	for rows.Next() {
		var resp GetAllClientsQueryResponse

		if err = rows.Scan(
			&resp.No,
			&resp.Name,
			&resp.FirstName,
			&resp.Address,
			&resp.City,
			&resp.PostalCode,
			&resp.Phone,
			&resp.Email,
		); err != nil {
			return nil, err
		}

		clients = append(clients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
