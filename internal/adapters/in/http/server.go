// Package http exposes the console API over echo. Handlers translate
// between wire DTOs and application commands/queries; business failures
// are mapped to status codes in errors.go.
package http

import (
	"net/http"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/application/usecases/queries"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	scheduleDeliveryHandler  commands.ScheduleDeliveryCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler    commands.CancelDeliveryCommandHandler
	createArticleHandler     commands.CreateArticleCommandHandler
	createClientHandler      commands.CreateClientCommandHandler
	createStaffHandler       commands.CreateStaffCommandHandler
	createPositionHandler    commands.CreatePositionCommandHandler
	deletePositionHandler    commands.DeletePositionCommandHandler
	openSessionHandler       commands.OpenSessionCommandHandler
	closeSessionHandler      commands.CloseSessionCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getReadyOrdersHandler  queries.GetReadyOrdersQueryHandler
	getDeliveriesHandler   queries.GetDeliveriesQueryHandler
	getAllArticlesHandler  queries.GetAllArticlesQueryHandler
	getAllClientsHandler   queries.GetAllClientsQueryHandler
	getAllStaffHandler     queries.GetAllStaffQueryHandler
	getAllPositionsHandler queries.GetAllPositionsQueryHandler
}

// Handlers bundles everything a Server needs; filled by the composition
// root.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	ScheduleDelivery  commands.ScheduleDeliveryCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
	CancelDelivery    commands.CancelDeliveryCommandHandler
	CreateArticle     commands.CreateArticleCommandHandler
	CreateClient      commands.CreateClientCommandHandler
	CreateStaff       commands.CreateStaffCommandHandler
	CreatePosition    commands.CreatePositionCommandHandler
	DeletePosition    commands.DeletePositionCommandHandler
	OpenSession       commands.OpenSessionCommandHandler
	CloseSession      commands.CloseSessionCommandHandler

	GetOrders       queries.GetOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetReadyOrders  queries.GetReadyOrdersQueryHandler
	GetDeliveries   queries.GetDeliveriesQueryHandler
	GetAllArticles  queries.GetAllArticlesQueryHandler
	GetAllClients   queries.GetAllClientsQueryHandler
	GetAllStaff     queries.GetAllStaffQueryHandler
	GetAllPositions queries.GetAllPositionsQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:       h.CreateOrder,
		changeOrderStatusHandler: h.ChangeOrderStatus,
		scheduleDeliveryHandler:  h.ScheduleDelivery,
		completeDeliveryHandler:  h.CompleteDelivery,
		cancelDeliveryHandler:    h.CancelDelivery,
		createArticleHandler:     h.CreateArticle,
		createClientHandler:      h.CreateClient,
		createStaffHandler:       h.CreateStaff,
		createPositionHandler:    h.CreatePosition,
		deletePositionHandler:    h.DeletePosition,
		openSessionHandler:       h.OpenSession,
		closeSessionHandler:      h.CloseSession,
		getOrdersHandler:         h.GetOrders,
		getOrderHandler:          h.GetOrder,
		getReadyOrdersHandler:    h.GetReadyOrders,
		getDeliveriesHandler:     h.GetDeliveries,
		getAllArticlesHandler:    h.GetAllArticles,
		getAllClientsHandler:     h.GetAllClients,
		getAllStaffHandler:       h.GetAllStaff,
		getAllPositionsHandler:   h.GetAllPositions,
	}
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface so request DTOs can carry validate tags.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New()}

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/sessions", s.OpenSession)
	v1.DELETE("/sessions/:token", s.CloseSession)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/ready", s.GetReadyOrders)
	v1.GET("/orders/:number", s.GetOrder)
	v1.POST("/orders/:number/status", s.ChangeOrderStatus)

	v1.POST("/deliveries", s.ScheduleDelivery)
	v1.GET("/deliveries", s.GetDeliveries)
	v1.POST("/deliveries/:id/delivered", s.CompleteDelivery)
	v1.DELETE("/deliveries/:id", s.CancelDelivery)

	v1.POST("/articles", s.CreateArticle)
	v1.GET("/articles", s.GetArticles)

	v1.POST("/clients", s.CreateClient)
	v1.GET("/clients", s.GetClients)

	v1.POST("/staff", s.CreateStaff)
	v1.GET("/staff", s.GetStaff)

	v1.POST("/positions", s.CreatePosition)
	v1.GET("/positions", s.GetPositions)
	v1.DELETE("/positions/:id", s.DeletePosition)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
