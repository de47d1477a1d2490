package http

import (
	"net/http"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/application/usecases/queries"
	"gescom/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateArticleRequest is the payload for POST /articles.
type CreateArticleRequest struct {
	Reference   string  `json:"reference" validate:"required"`
	Designation string  `json:"designation" validate:"required"`
	Purchase    float64 `json:"purchase_price" validate:"gte=0"`
	Sale        float64 `json:"sale_price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category"`
	VATCode     int     `json:"vat_code"`
}

// CreateClientRequest is the payload for POST /clients.
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required"`
	FirstName  string `json:"first_name"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode int    `json:"postal_code" validate:"required,gt=0"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

// CreateStaffRequest is the payload for POST /staff.
type CreateStaffRequest struct {
	Name         string `json:"name" validate:"required"`
	FirstName    string `json:"first_name"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	HireDate     string `json:"hire_date" validate:"required"`
	PositionCode string `json:"position_code" validate:"required"`
	Login        string `json:"login" validate:"required"`
}

// CreatePositionRequest is the payload for POST /positions.
type CreatePositionRequest struct {
	Code        string `json:"code" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description"`
	Indice      int    `json:"indice" validate:"gte=0"`
}

// CreatedIDResponse carries a generated UUID back to the console.
type CreatedIDResponse struct {
	ID string `json:"id"`
}

// CreatedNoResponse carries a storage-assigned serial back to the console.
type CreatedNoResponse struct {
	No int64 `json:"no"`
}

// CreateArticle adds an article to the catalogue.
func (s *Server) CreateArticle(ctx echo.Context) error {
	var req CreateArticleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid article data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateArticleCommand(
		req.Reference, req.Designation, req.Purchase, req.Sale,
		req.Stock, req.Category, req.VATCode)
	if err != nil {
		return badRequest(ctx, "Invalid article data: "+err.Error())
	}

	id, err := s.createArticleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedIDResponse{ID: id.String()})
}

// GetArticles lists the catalogue.
func (s *Server) GetArticles(ctx echo.Context) error {
	response, err := s.getAllArticlesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllArticlesQuery())
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient registers a client.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid client phone: "+err.Error())
	}
	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid client email: "+err.Error())
	}

	cmd, err := commands.NewCreateClientCommand(
		req.Name, req.FirstName, req.Address, req.City,
		req.PostalCode, phone, email)
	if err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}

	no, err := s.createClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedNoResponse{No: no})
}

// GetClients lists clients.
func (s *Server) GetClients(ctx echo.Context) error {
	response, err := s.getAllClientsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStaff registers a staff member against an existing position.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var req CreateStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid staff data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid staff phone: "+err.Error())
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return badRequest(ctx, "Invalid hire date: "+err.Error())
	}

	cmd, err := commands.NewCreateStaffCommand(
		req.Name, req.FirstName, phone, req.Address, req.City,
		hireDate, req.PositionCode, req.Login)
	if err != nil {
		return badRequest(ctx, "Invalid staff data: "+err.Error())
	}

	id, err := s.createStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedNoResponse{No: id})
}

// GetStaff lists staff members with their position labels.
func (s *Server) GetStaff(ctx echo.Context) error {
	response, err := s.getAllStaffHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllStaffQuery())
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePosition adds a position to the repository.
func (s *Server) CreatePosition(ctx echo.Context) error {
	var req CreatePositionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid position data: "+err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePositionCommand(
		req.Code, req.Label, req.Description, req.Indice)
	if err != nil {
		return badRequest(ctx, "Invalid position data: "+err.Error())
	}

	id, err := s.createPositionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedIDResponse{ID: id.String()})
}

// GetPositions lists positions with their staff counts.
func (s *Server) GetPositions(ctx echo.Context) error {
	response, err := s.getAllPositionsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllPositionsQuery())
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeletePosition removes a position; refused while staff reference it.
func (s *Server) DeletePosition(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid position id: "+err.Error())
	}

	cmd, err := commands.NewDeletePositionCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid position id: "+err.Error())
	}

	if err := s.deletePositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
