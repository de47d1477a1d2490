package http

import (
	"net/http"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/application/usecases/queries"
	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ScheduleDeliveryRequest is the payload for POST /deliveries. Payment
// timing and method arrive as their wire codes ("avant"/"apres",
// "CB"/"ESP"/"CHQ").
type ScheduleDeliveryRequest struct {
	OrderNumber   int64  `json:"order_number" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required"`
	CarrierID     int64  `json:"carrier_id" validate:"required,gt=0"`
	PaymentTiming string `json:"payment_timing" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// ScheduleDeliveryResponse returns the identifier of the new delivery.
type ScheduleDeliveryResponse struct {
	ID string `json:"id"`
}

// ScheduleDelivery books a ready order onto a carrier's round.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	var req ScheduleDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid delivery date: "+err.Error())
	}
	timing, err := delivery.PaymentTimingFromCode(req.PaymentTiming)
	if err != nil {
		return badRequest(ctx, "Unknown payment timing: "+req.PaymentTiming)
	}
	method, err := delivery.PaymentMethodFromCode(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Unknown payment method: "+req.PaymentMethod)
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		req.OrderNumber, date, req.CarrierID, timing, method)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	id, err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ScheduleDeliveryResponse{ID: id.String()})
}

// CompleteDelivery marks a delivery as handed over; the linked order
// follows through its own transition.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery cancels a pending delivery and returns the order to
// the ready pool.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewCancelDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveries lists the rounds for a calendar day (?date=2026-03-12),
// ordered by carrier then postal zone.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	date, err := parseDate(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery date: "+err.Error())
	}

	query, err := queries.NewGetDeliveriesQuery(date)
	if err != nil {
		return badRequest(ctx, "Invalid delivery date: "+err.Error())
	}

	response, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
