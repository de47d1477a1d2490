package order

import (
	"fmt"

	"gescom/internal/pkg/errs"
)

// Status represents the lifecycle state of an order (commande).
// It implements a state machine with a fixed set of transitions:
//
//	EnCours ──┬──> Prete ──┬──> Livree
//	          │            ├──> Sortie
//	          │            ├──> Annulee
//	          │            └──> AnnuleeLivree
//	          └──> Annulee
//
// Livree, Sortie, Annulee and AnnuleeLivree are terminal: no outgoing
// transitions exist, not even to themselves. Requesting a transition to the
// current state is rejected like any other missing edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// EnCours ("EC") is the initial status of a freshly created order.
	EnCours

	// Prete ("Pr") marks an order as ready: assembled and eligible for
	// delivery scheduling.
	Prete

	// Livree ("lI") marks an order as delivered to the client. Terminal.
	Livree

	// Sortie ("SO") marks an order as taken out of the warehouse by the
	// client directly, without a delivery. Terminal.
	Sortie

	// Annulee ("AN") marks an order as cancelled before delivery. Terminal.
	Annulee

	// AnnuleeLivree ("AL") marks a ready order whose scheduled delivery was
	// cancelled. Terminal.
	AnnuleeLivree
)

// transitions is the full edge table of the state machine. Absence of a
// (from, to) pair means the transition is forbidden.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		EnCours: {Prete, Annulee},
		Prete:   {Livree, Sortie, Annulee, AnnuleeLivree},
	}
}

func statusCodes() map[Status]string {
	return map[Status]string{
		EnCours:       "EC",
		Prete:         "Pr",
		Livree:        "lI",
		Sortie:        "SO",
		Annulee:       "AN",
		AnnuleeLivree: "AL",
	}
}

func statusLabels() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		EnCours:       "En Cours",
		Prete:         "Prête",
		Livree:        "Livrée",
		Sortie:        "Sortie",
		Annulee:       "Annulée",
		AnnuleeLivree: "Annulée Livrée",
	}
}

// StatusFromCode parses the two-character wire code ("EC", "Pr", "lI",
// "SO", "AN", "AL") used by the API and the database.
func StatusFromCode(code string) (Status, error) {
	for status, c := range statusCodes() {
		if c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a known status code", code))
}

// Validate rejects Unknown and any value outside the declared constants.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
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

// String returns the human-readable label of the status.
func (s Status) String() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(transitions()[s]) == 0
}

// IsCancelled reports whether the status is one of the cancellation
// outcomes. The history archiver uses this to select orders to record.
func (s Status) IsCancelled() bool {
	return s == Annulee || s == AnnuleeLivree
}

// CanTransitionTo reports whether the edge (s -> target) exists.
// A no-op transition (target == s) is never in the table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the edge (s -> target)
// exists, or an InvalidTransitionError naming both endpoints. The receiver
// is never mutated; the caller decides whether to store the result.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
