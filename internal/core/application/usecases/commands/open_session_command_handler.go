package commands

import (
	"context"
	"time"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/ports"
)

// OpenSessionCommandHandler signs a staff member in. The login is resolved
// to a staff record, the role is derived from the position label, and the
// session is stored under a fresh token with a bounded lifetime. Unknown
// logins surface as errs.ErrObjectNotFound.
type OpenSessionCommandHandler struct {
	uowFactory StaffUoWFactory
	sessions   ports.SessionStore
	ttl        time.Duration
}

func NewOpenSessionCommandHandler(
	uowFactory StaffUoWFactory,
	sessions ports.SessionStore,
	ttl time.Duration,
) OpenSessionCommandHandler {
	return OpenSessionCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		ttl:        ttl,
	}
}

// Handle processes the command and returns the opened session.
func (h OpenSessionCommandHandler) Handle(ctx context.Context, cmd OpenSessionCommand) (ports.Session, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := uow.StaffRepository().GetByLogin(ctx, cmd.Login())
	if err != nil {
		return ports.Session{}, err
	}

	pos, err := uow.PositionRepository().GetByCode(ctx, member.PositionCode())
	if err != nil {
		return ports.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.Session{}, err
	}

	session := ports.Session{
		Token:    kernel.NewUUID().String(),
		StaffID:  member.ID(),
		Login:    member.Login(),
		Role:     pos.Role(),
		IssuedAt: time.Now().UTC(),
	}

	if err = h.sessions.Save(ctx, session, h.ttl); err != nil {
		return ports.Session{}, err
	}

	return session, nil
}
