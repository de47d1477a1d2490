package queries

import (
	"errors"
	"time"

	"gescom/internal/pkg/guard"
)

var ErrGetAllStaffQueryIsNotConstructed = errors.New(
	"GetAllStaffQuery must be created via NewGetAllStaffQuery constructor",
)

// GetAllStaffQuery retrieves the staff roster with position labels.
type GetAllStaffQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllStaffQuery() GetAllStaffQuery {
	return GetAllStaffQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStaffQueryIsNotConstructed)
}

// GetAllStaffQueryResponse is one roster row, position label included so
// the console needs no second lookup.
type GetAllStaffQueryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FirstName     string    `json:"first_name"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	HireDate      time.Time `json:"hire_date"`
	PositionCode  string    `json:"position_code"`
	PositionLabel string    `json:"position_label"`
	Login         string    `json:"login"`
}
