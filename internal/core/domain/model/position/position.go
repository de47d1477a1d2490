// Package position provides the Position (poste) reference entity: a job
// role definition with a pay index, referenced by staff records.
package position

import (
	"errors"
	"fmt"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

// Pay index bounds for any position.
const (
	MinIndice = 100
	MaxIndice = 1000
)

// ErrPositionIsNotConstructed is returned when a Position instance was not
// created through NewPosition or RestorePosition.
var ErrPositionIsNotConstructed = errors.New("Position must be created via NewPosition or RestorePosition")

// Position is a job-role definition. Its code is unique (enforced by
// storage) and a position referenced by at least one staff member cannot be
// deleted; that rule lives in the delete command since it needs to count
// other rows.
type Position struct {
	id          kernel.UUID
	code        string
	label       string
	description string
	indice      int

	isConstructed bool
}

// NewPosition creates a position definition. The pay index must fall
// within [MinIndice, MaxIndice].
func NewPosition(id kernel.UUID, code, label, description string, indice int) (*Position, error) {
	p := &Position{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setLabel(label),
		p.setIndice(indice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePosition rehydrates a position from persistence.
func RestorePosition(id kernel.UUID, code, label, description string, indice int) (*Position, error) {
	return NewPosition(id, code, label, description, indice)
}

// Validate ensures the instance came from a constructor.
func (p *Position) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPositionIsNotConstructed
	}
	return nil
}

func (p *Position) ID() kernel.UUID     { return p.id }
func (p *Position) Code() string        { return p.code }
func (p *Position) Label() string       { return p.label }
func (p *Position) Description() string { return p.description }
func (p *Position) Indice() int         { return p.indice }

// Role resolves the declarative role attached to this position's label.
func (p *Position) Role() Role {
	return RoleFromLabel(p.label)
}

func (p *Position) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Position) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("position code")
	}
	p.code = code
	return nil
}

func (p *Position) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("position label")
	}
	p.label = label
	return nil
}

func (p *Position) setIndice(indice int) error {
	if indice < MinIndice || indice > MaxIndice {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"indice", indice, MinIndice, MaxIndice,
			fmt.Errorf("pay index must stay within the configured range"))
	}
	p.indice = indice
	return nil
}
