package http

import (
	"net/http"
	"strconv"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/application/usecases/queries"
	"gescom/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	ClientNo int64  `json:"client_no" validate:"required,gt=0"`
	Date     string `json:"date" validate:"required"`
}

// CreateOrderResponse returns the serial assigned by storage.
type CreateOrderResponse struct {
	Number int64 `json:"number"`
}

// ChangeOrderStatusRequest is the payload for POST /orders/:number/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder registers a new order for an existing client.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid order date: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(req.ClientNo, date)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{Number: number})
}

// ChangeOrderStatus moves an order along its lifecycle. The status is
// given as its two-letter code.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	number, err := strconv.ParseInt(ctx.Param("number"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	target, err := order.StatusFromCode(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown order status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, target)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders lists orders with client identity, optionally filtered by
// status code (?status=Pr).
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()
	if code := ctx.QueryParam("status"); code != "" {
		status, err := order.StatusFromCode(code)
		if err != nil {
			return badRequest(ctx, "Unknown order status: "+code)
		}
		query, err = queries.NewGetOrdersQuery(status)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
	}

	response, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder returns one order with its client details.
func (s *Server) GetOrder(ctx echo.Context) error {
	number, err := strconv.ParseInt(ctx.Param("number"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyOrders lists orders eligible for delivery scheduling.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	response, err := s.getReadyOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetReadyOrdersQuery())
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
