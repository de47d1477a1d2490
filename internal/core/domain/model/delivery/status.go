package delivery

import (
	"fmt"

	"gescom/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery, tracked
// independently from the state of the order it fulfills:
//
//	EnCours ──┬──> Livree
//	          └──> Annulee
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// EnCours is the initial status of a scheduled delivery. Only
	// deliveries in this status count against carrier capacity.
	EnCours

	// Livree marks the delivery as completed. Terminal.
	Livree

	// Annulee marks the delivery as cancelled. Terminal. Cancelling a
	// delivery does not move its order back to Prête; that is a separate
	// explicit action on the order.
	Annulee
)

func statusCodes() map[Status]string {
	return map[Status]string{
		EnCours: "EC",
		Livree:  "lI",
		Annulee: "AN",
	}
}

// StatusFromCode parses the two-character wire code.
func StatusFromCode(code string) (Status, error) {
	for status, c := range statusCodes() {
		if c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status", fmt.Errorf("%q is not a known delivery status code", code))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status", fmt.Errorf("%d is not a valid delivery status", int(s)))
	}
	return nil
}

// Code returns the two-character wire code, or "??" for invalid values.
func (s Status) Code() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "??"
}

func (s Status) String() string {
	switch s {
	case EnCours:
		return "En cours"
	case Livree:
		return "Livrée"
	case Annulee:
		return "Annulée"
	default:
		return "Unknown"
	}
}

// IsActive reports whether the delivery occupies carrier capacity.
func (s Status) IsActive() bool {
	return s == EnCours
}
