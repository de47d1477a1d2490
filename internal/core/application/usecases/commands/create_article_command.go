package commands

import (
	"errors"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrCreateArticleCommandIsNotConstructed = errors.New(
	"CreateArticleCommand must be created via NewCreateArticleCommand constructor",
)

// CreateArticleCommand represents a request to add a catalog item.
type CreateArticleCommand struct { //nolint:recvcheck //using for validation
	reference   string
	designation string
	purchase    float64
	sale        float64
	stock       int
	category    string
	vatCode     int

	guard guard.ConstructorGuard
}

// NewCreateArticleCommand creates the command. The price rule (sale >
// purchase) is checked again by the aggregate; here only presence is
// validated so malformed requests fail before a transaction is opened.
func NewCreateArticleCommand(
	reference, designation string,
	purchase, sale float64,
	stock int,
	category string,
	vatCode int,
) (CreateArticleCommand, error) {
	if reference == "" {
		return CreateArticleCommand{}, errs.NewValueIsRequiredError("reference")
	}
	if designation == "" {
		return CreateArticleCommand{}, errs.NewValueIsRequiredError("designation")
	}

	return CreateArticleCommand{
		reference:   reference,
		designation: designation,
		purchase:    purchase,
		sale:        sale,
		stock:       stock,
		category:    category,
		vatCode:     vatCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateArticleCommand) Validate() error {
	return c.guard.Validate(ErrCreateArticleCommandIsNotConstructed)
}

func (c CreateArticleCommand) Reference() string   { return c.reference }
func (c CreateArticleCommand) Designation() string { return c.designation }
func (c CreateArticleCommand) Purchase() float64   { return c.purchase }
func (c CreateArticleCommand) Sale() float64       { return c.sale }
func (c CreateArticleCommand) Stock() int          { return c.stock }
func (c CreateArticleCommand) Category() string    { return c.category }
func (c CreateArticleCommand) VATCode() int        { return c.vatCode }
