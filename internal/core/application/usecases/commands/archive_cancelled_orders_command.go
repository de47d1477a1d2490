package commands

import (
	"errors"
	"time"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrArchiveCancelledOrdersCommandIsNotConstructed = errors.New(
	"ArchiveCancelledOrdersCommand must be created via NewArchiveCancelledOrdersCommand constructor",
)

// ArchiveCancelledOrdersCommand requests a sweep of cancelled orders into
// the history table. The timestamp is supplied by the caller (the nightly
// job) so the handler stays deterministic.
type ArchiveCancelledOrdersCommand struct { //nolint:recvcheck //using for validation
	archivedAt time.Time

	guard guard.ConstructorGuard
}

// NewArchiveCancelledOrdersCommand creates the command.
func NewArchiveCancelledOrdersCommand(archivedAt time.Time) (ArchiveCancelledOrdersCommand, error) {
	if archivedAt.IsZero() {
		return ArchiveCancelledOrdersCommand{}, errs.NewValueIsRequiredError("archivedAt")
	}

	return ArchiveCancelledOrdersCommand{
		archivedAt: archivedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveCancelledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveCancelledOrdersCommandIsNotConstructed)
}

func (c ArchiveCancelledOrdersCommand) ArchivedAt() time.Time { return c.archivedAt }
