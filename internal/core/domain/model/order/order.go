package order

import (
	"errors"
	"fmt"
	"time"

	"gescom/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a client purchase request (commande).
//
// Invariants:
//   - a valid client reference is always present
//   - the status only moves along the edges declared in the Status machine
//   - the order number is assigned once, by the database, and never changes
//   - delivered orders are never hard-deleted; pre-delivery removal is a
//     cancellation (EnCours -> Annulee or Prete -> Annulee)
type Order struct {
	// number is the server-assigned serial; zero until first persisted.
	number int64

	// clientNo references the ordering client.
	clientNo int64

	// date is the business date of the order.
	date time.Time

	// status is the current position in the lifecycle.
	status Status

	isConstructed bool
}

// NewOrder creates an order for the given client in the initial EnCours
// status. The order number stays zero until the repository persists the
// aggregate and assigns the database serial.
func NewOrder(clientNo int64, date time.Time) (*Order, error) {
	o := &Order{
		status:        EnCours,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientNo(clientNo),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence. Unlike NewOrder it
// accepts any valid status, since stored orders may be anywhere in the
// lifecycle.
func RestoreOrder(number, clientNo int64, date time.Time, status Status) (*Order, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%d is not a persisted serial", number))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(clientNo, date)
	if err != nil {
		return nil, err
	}

	o.number = number
	o.status = status
	return o, nil
}

// Validate ensures the instance came from NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by their number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number != 0 && o.number == other.number
}

// Number returns the server-assigned order serial (zero if not yet persisted).
func (o *Order) Number() int64 {
	return o.number
}

// ClientNo returns the ordering client's number.
func (o *Order) ClientNo() int64 {
	return o.clientNo
}

// Date returns the business date of the order.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsReady reports whether the order is eligible for delivery scheduling.
func (o *Order) IsReady() bool {
	return o.status == Prete
}

// RequestTransition moves the order to target when the state machine
// allows the edge. On refusal the status is left unchanged and an
// InvalidTransitionError describing the attempted edge is returned; the
// operation is not retried.
func (o *Order) RequestTransition(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// AssignNumber records the database serial after the first insert.
// It fails on orders that already carry a number.
func (o *Order) AssignNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%d is not a persisted serial", number))
	}
	if o.number != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("order %d already has a number", o.number))
	}

	o.number = number
	return nil
}

func (o *Order) setClientNo(clientNo int64) error {
	if clientNo <= 0 {
		return errs.NewValueIsRequiredError("client number")
	}
	o.clientNo = clientNo
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.date = date
	return nil
}
