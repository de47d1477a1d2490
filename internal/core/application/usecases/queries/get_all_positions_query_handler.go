package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPositionsQueryHandler reads position definitions with a staff
// count per position, sorted by code.
type GetAllPositionsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllPositionsQueryHandler(db *gorm.DB) GetAllPositionsQueryHandler {
	return GetAllPositionsQueryHandler{db: db}
}

func (h GetAllPositionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPositionsQuery,
) ([]GetAllPositionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.code,
			p.label,
			p.description,
			p.indice,
			COUNT(s.id)
		FROM positions p
		LEFT JOIN staff s ON s.position_code = p.code
		GROUP BY p.id, p.code, p.label, p.description, p.indice
		ORDER BY p.code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]GetAllPositionsQueryResponse, 0)

	for rows.Next() {
		var resp GetAllPositionsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Label,
			&resp.Description,
			&resp.Indice,
			&resp.StaffCount,
		); err != nil {
			return nil, err
		}

		resp.ID = id.String()

		positions = append(positions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
