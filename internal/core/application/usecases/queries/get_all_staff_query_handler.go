package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllStaffQueryHandler reads the staff roster, joined with the position
// table for labels, sorted by name.
type GetAllStaffQueryHandler struct {
	db *gorm.DB
}

func NewGetAllStaffQueryHandler(db *gorm.DB) GetAllStaffQueryHandler {
	return GetAllStaffQueryHandler{db: db}
}

func (h GetAllStaffQueryHandler) Handle(
	ctx context.Context,
	query GetAllStaffQuery,
) ([]GetAllStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.first_name,
			s.phone,
			s.city,
			s.hire_date,
			s.position_code,
			p.label,
			s.login
		FROM staff s
		JOIN positions p ON p.code = s.position_code
		ORDER BY s.name, s.first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]GetAllStaffQueryResponse, 0)

	for rows.Next() {
		var resp GetAllStaffQueryResponse

		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.FirstName,
			&resp.Phone,
			&resp.City,
			&resp.HireDate,
			&resp.PositionCode,
			&resp.PositionLabel,
			&resp.Login,
		); err != nil {
			return nil, err
		}

		roster = append(roster, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
