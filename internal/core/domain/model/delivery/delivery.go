package delivery

import (
	"errors"
	"fmt"
	"time"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

// MaxPerCarrierZoneDay bounds how many active deliveries one carrier may
// carry for a single calendar date and postal zone.
const MaxPerCarrierZoneDay = 15

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the fulfillment record for one ready order, assigned to a
// carrier on a scheduled date.
//
// Invariants:
//   - references exactly one order; at most one delivery exists per order
//     (enforced by a unique index in storage)
//   - the postal zone is copied from the order's client at scheduling time
//     and never recomputed, so capacity accounting stays stable even if the
//     client later moves
//   - its status is tracked independently from the order's status
type Delivery struct {
	id          kernel.UUID
	orderNumber int64
	date        time.Time
	carrierID   int64
	postalCode  int
	timing      PaymentTiming
	method      PaymentMethod
	status      Status

	isConstructed bool
}

// NewDelivery creates a delivery in the initial EnCours status. Eligibility
// of the order (it must be Prête) and carrier capacity are checked by the
// scheduling command, not here: the aggregate cannot see other rows.
func NewDelivery(
	id kernel.UUID,
	orderNumber int64,
	date time.Time,
	carrierID int64,
	postalCode int,
	timing PaymentTiming,
	method PaymentMethod,
) (*Delivery, error) {
	d := &Delivery{
		status:        EnCours,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderNumber(orderNumber),
		d.setDate(date),
		d.setCarrierID(carrierID),
		d.setPostalCode(postalCode),
		d.setTiming(timing),
		d.setMethod(method),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rehydrates a delivery from persistence with any valid
// status.
func RestoreDelivery(
	id kernel.UUID,
	orderNumber int64,
	date time.Time,
	carrierID int64,
	postalCode int,
	timing PaymentTiming,
	method PaymentMethod,
	status Status,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, orderNumber, date, carrierID, postalCode, timing, method)
	if err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the instance came from a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID       { return d.id }
func (d *Delivery) OrderNumber() int64    { return d.orderNumber }
func (d *Delivery) Date() time.Time       { return d.date }
func (d *Delivery) CarrierID() int64      { return d.carrierID }
func (d *Delivery) PostalCode() int       { return d.postalCode }
func (d *Delivery) Timing() PaymentTiming { return d.timing }
func (d *Delivery) Method() PaymentMethod { return d.method }
func (d *Delivery) Status() Status        { return d.status }
func (d *Delivery) IsActive() bool        { return d.status.IsActive() }

// MarkDelivered completes an active delivery.
func (d *Delivery) MarkDelivered() error {
	if d.status != EnCours {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status", fmt.Errorf("%s is not a valid status to deliver from", d.status))
	}
	d.status = Livree
	return nil
}

// Cancel aborts an active delivery. The related order keeps its own status;
// returning it to Prête is an explicit separate action.
func (d *Delivery) Cancel() error {
	if d.status != EnCours {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status", fmt.Errorf("%s is not a valid status to cancel from", d.status))
	}
	d.status = Annulee
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsRequiredError("order number")
	}
	d.orderNumber = orderNumber
	return nil
}

func (d *Delivery) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	d.date = date
	return nil
}

func (d *Delivery) setCarrierID(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValueIsRequiredError("carrier")
	}
	d.carrierID = carrierID
	return nil
}

func (d *Delivery) setPostalCode(postalCode int) error {
	if postalCode <= 0 {
		return errs.NewValueIsRequiredError("postal code")
	}
	d.postalCode = postalCode
	return nil
}

func (d *Delivery) setTiming(timing PaymentTiming) error {
	if err := timing.Validate(); err != nil {
		return err
	}
	d.timing = timing
	return nil
}

func (d *Delivery) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	d.method = method
	return nil
}
