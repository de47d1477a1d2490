package http

import (
	"errors"
	"net/http"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// businessError maps application and domain failures to HTTP statuses.
//
//	404 — the referenced entity does not exist
//	409 — the request conflicts with current state (duplicates,
//	      refused transitions, capacity, referenced positions)
//	422 — the entity exists but is not in a state the operation accepts
//	400 — the input itself is malformed
func businessError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey),
		errors.Is(err, commands.ErrOrderAlreadyScheduled),
		errors.Is(err, commands.ErrCapacityExceeded),
		errors.Is(err, commands.ErrPositionInUse),
		errors.Is(err, order.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrOrderNotReady),
		errors.Is(err, commands.ErrNotACarrier):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
