package http

import (
	"net/http"
	"time"

	"gescom/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// OpenSessionRequest is the payload for POST /sessions.
type OpenSessionRequest struct {
	Login string `json:"login" validate:"required"`
}

// SessionResponse describes an open session to the console.
type SessionResponse struct {
	Token    string    `json:"token"`
	StaffID  int64     `json:"staff_id"`
	Login    string    `json:"login"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

// OpenSession authenticates a staff login and issues a session token.
func (s *Server) OpenSession(ctx echo.Context) error {
	var req OpenSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid session data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewOpenSessionCommand(req.Login)
	if err != nil {
		return badRequest(ctx, "Invalid session data: "+err.Error())
	}

	session, err := s.openSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionResponse{
		Token:    session.Token,
		StaffID:  session.StaffID,
		Login:    session.Login,
		Role:     string(session.Role),
		IssuedAt: session.IssuedAt,
	})
}

// CloseSession drops the session for the given token.
func (s *Server) CloseSession(ctx echo.Context) error {
	cmd, err := commands.NewCloseSessionCommand(ctx.Param("token"))
	if err != nil {
		return badRequest(ctx, "Invalid session token: "+err.Error())
	}

	if err := s.closeSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
