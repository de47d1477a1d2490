// Package staff provides the Staff (personnel) reference entity. A staff
// member whose position carries the delivery permission acts as a carrier
// (livreur) and may be assigned deliveries.
package staff

import (
	"errors"
	"fmt"
	"time"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not
// created through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff")

// Staff is an employee record identified by a server-assigned serial and
// attached to a Position via its code. Whether the referenced code exists
// is checked by the create command against the position repository.
type Staff struct {
	// id is the server-assigned serial; zero until first persisted.
	id int64

	name         string
	firstName    string
	phone        kernel.Phone
	address      string
	city         string
	hireDate     time.Time
	positionCode string
	login        string

	isConstructed bool
}

// NewStaff creates a staff record bound to a position code.
func NewStaff(
	name, firstName string,
	phone kernel.Phone,
	address, city string,
	hireDate time.Time,
	positionCode, login string,
) (*Staff, error) {
	s := &Staff{
		address:       address,
		city:          city,
		login:         login,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setName(name),
		s.setFirstName(firstName),
		s.setPhone(phone),
		s.setHireDate(hireDate),
		s.setPositionCode(positionCode),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff rehydrates a staff record from persistence.
func RestoreStaff(
	id int64,
	name, firstName string,
	phone kernel.Phone,
	address, city string,
	hireDate time.Time,
	positionCode, login string,
) (*Staff, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"staff id", fmt.Errorf("%d is not a persisted serial", id))
	}

	s, err := NewStaff(name, firstName, phone, address, city, hireDate, positionCode, login)
	if err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

// Validate ensures the instance came from a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

func (s *Staff) ID() int64            { return s.id }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) FirstName() string    { return s.firstName }
func (s *Staff) Phone() kernel.Phone  { return s.phone }
func (s *Staff) Address() string      { return s.address }
func (s *Staff) City() string         { return s.city }
func (s *Staff) HireDate() time.Time  { return s.hireDate }
func (s *Staff) PositionCode() string { return s.positionCode }
func (s *Staff) Login() string        { return s.login }

// AssignID records the database serial after the first insert.
func (s *Staff) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"staff id", fmt.Errorf("%d is not a persisted serial", id))
	}
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"staff id", fmt.Errorf("staff %d already has an id", s.id))
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("staff name")
	}
	s.name = name
	return nil
}

func (s *Staff) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("staff first name")
	}
	s.firstName = firstName
	return nil
}

func (s *Staff) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	s.phone = phone
	return nil
}

func (s *Staff) setHireDate(hireDate time.Time) error {
	if hireDate.IsZero() {
		return errs.NewValueIsRequiredError("hire date")
	}
	s.hireDate = hireDate
	return nil
}

func (s *Staff) setPositionCode(positionCode string) error {
	if positionCode == "" {
		return errs.NewValueIsRequiredError("position code")
	}
	s.positionCode = positionCode
	return nil
}
