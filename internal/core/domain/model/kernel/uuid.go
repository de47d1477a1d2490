// Package kernel holds shared value objects used across aggregates.
package kernel

import (
	"gescom/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a UUID that was not initialized through
// one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is an immutable identifier value object wrapping github.com/google/uuid.
// The zero value is invalid; construct through NewUUID, UUIDFromString or
// UUIDFromBytes. Deliveries, articles and positions use it as their primary
// identifier (orders, clients and staff carry server-assigned serials).
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical textual representation.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	if parsed == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUID{id: parsed}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte representation,
// typically when rehydrating from the database.
func UUIDFromBytes(b []byte) (UUID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	if parsed == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUID{id: parsed}, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
