// Package positionrepo persists job position definitions. The position
// code carries a unique index; staff rows reference it.
package positionrepo

import (
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/position"

	"github.com/google/uuid"
)

// PositionDTO is the database representation of a position definition.
type PositionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex;not null"`
	Label       string    `gorm:"not null"`
	Description string
	Indice      int `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "positions".
func (PositionDTO) TableName() string {
	return "positions"
}

func fromDomain(aggregate *position.Position) PositionDTO {
	return PositionDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Label:       aggregate.Label(),
		Description: aggregate.Description(),
		Indice:      aggregate.Indice(),
	}
}

func toDomain(dto PositionDTO) (*position.Position, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return position.RestorePosition(id, dto.Code, dto.Label, dto.Description, dto.Indice)
}
