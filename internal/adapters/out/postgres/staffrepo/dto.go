// Package staffrepo persists staff records. Staff are keyed by a database
// serial; the login carries a unique index for sign-in lookups.
package staffrepo

import (
	"time"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/staff"
)

// StaffDTO is the database representation of a staff record.
type StaffDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	FirstName    string
	Phone        string `gorm:"type:varchar(10);not null"`
	Address      string
	City         string
	HireDate     time.Time `gorm:"not null"`
	PositionCode string    `gorm:"index;not null"`
	Login        string    `gorm:"uniqueIndex;not null"`
}

// TableName overrides GORM's default naming to use "staff".
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		FirstName:    aggregate.FirstName(),
		Phone:        aggregate.Phone().String(),
		Address:      aggregate.Address(),
		City:         aggregate.City(),
		HireDate:     aggregate.HireDate(),
		PositionCode: aggregate.PositionCode(),
		Login:        aggregate.Login(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(
		dto.ID,
		dto.Name,
		dto.FirstName,
		phone,
		dto.Address,
		dto.City,
		dto.HireDate,
		dto.PositionCode,
		dto.Login,
	)
}
