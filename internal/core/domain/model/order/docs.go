// Package order provides the Order aggregate root and its lifecycle state
// machine.
//
// The package includes:
//   - Order: the aggregate managing identity, client reference and lifecycle
//   - Status: a state machine enforcing the fixed transition table
//
// Key business rules:
//   - orders start in EnCours and may only follow the declared edges:
//     EnCours -> Prete | Annulee, Prete -> Livree | Sortie | Annulee | AnnuleeLivree
//   - Livree, Sortie, Annulee and AnnuleeLivree are terminal
//   - a transition request to the current status is refused, not treated as
//     a success
//   - refused transitions leave the stored state untouched and are surfaced
//     to the caller, never retried
package order
