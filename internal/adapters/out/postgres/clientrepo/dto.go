// Package clientrepo persists client records. Clients are keyed by a
// database serial; contact fields are stored in their validated string
// forms.
package clientrepo

import (
	"gescom/internal/core/domain/model/client"
	"gescom/internal/core/domain/model/kernel"
)

// ClientDTO is the database representation of a client record.
type ClientDTO struct {
	No         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"not null"`
	FirstName  string
	Address    string
	City       string
	PostalCode int    `gorm:"index;not null"`
	Phone      string `gorm:"type:varchar(10);not null"`
	Email      string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		No:         aggregate.No(),
		Name:       aggregate.Name(),
		FirstName:  aggregate.FirstName(),
		Address:    aggregate.Address(),
		City:       aggregate.City(),
		PostalCode: aggregate.PostalCode(),
		Phone:      aggregate.Phone().String(),
		Email:      aggregate.Email().String(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		dto.No,
		dto.Name,
		dto.FirstName,
		dto.Address,
		dto.City,
		dto.PostalCode,
		phone,
		email,
	)
}
