package delivery

import (
	"fmt"

	"gescom/internal/pkg/errs"
)

// PaymentTiming says whether the client pays before or after the goods are
// handed over.
type PaymentTiming int

const (
	TimingUnknown PaymentTiming = iota

	// BeforeDelivery ("avant"): payment is collected when scheduling.
	BeforeDelivery

	// AfterDelivery ("apres"): the carrier collects on the doorstep.
	AfterDelivery
)

func timingCodes() map[PaymentTiming]string {
	return map[PaymentTiming]string{
		BeforeDelivery: "avant",
		AfterDelivery:  "apres",
	}
}

// PaymentTimingFromCode parses the "avant"/"apres" wire form.
func PaymentTimingFromCode(code string) (PaymentTiming, error) {
	for timing, c := range timingCodes() {
		if c == code {
			return timing, nil
		}
	}
	return TimingUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment timing", fmt.Errorf("%q is not a known payment timing", code))
}

func (t PaymentTiming) Validate() error {
	if _, ok := timingCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment timing", fmt.Errorf("%d is not a valid payment timing", int(t)))
	}
	return nil
}

func (t PaymentTiming) Code() string {
	if code, ok := timingCodes()[t]; ok {
		return code
	}
	return "??"
}

// PaymentMethod is the means of payment recorded on the delivery slip.
type PaymentMethod int

const (
	MethodUnknown PaymentMethod = iota

	// Card ("CB"): bank card.
	Card

	// Cash ("ESP"): espèces.
	Cash

	// Cheque ("CHQ"): chèque.
	Cheque
)

func methodCodes() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Card:   "CB",
		Cash:   "ESP",
		Cheque: "CHQ",
	}
}

// PaymentMethodFromCode parses the wire form.
func PaymentMethodFromCode(code string) (PaymentMethod, error) {
	for method, c := range methodCodes() {
		if c == code {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a known payment method", code))
}

func (m PaymentMethod) Validate() error {
	if _, ok := methodCodes()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%d is not a valid payment method", int(m)))
	}
	return nil
}

func (m PaymentMethod) Code() string {
	if code, ok := methodCodes()[m]; ok {
		return code
	}
	return "??"
}
