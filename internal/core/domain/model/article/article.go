// Package article provides the Article reference entity (catalog item).
// Articles carry no lifecycle; the only derived rule is that the sale price
// must exceed the purchase price.
package article

import (
	"errors"
	"fmt"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

// ErrArticleIsNotConstructed is returned when an Article instance was not
// created through NewArticle or RestoreArticle.
var ErrArticleIsNotConstructed = errors.New("Article must be created via NewArticle or RestoreArticle")

// Article is a catalog item. Reference uniqueness is enforced by storage;
// this entity only checks field-level rules.
type Article struct {
	id          kernel.UUID
	reference   string
	designation string
	purchase    float64
	sale        float64
	stock       int
	category    string
	vatCode     int

	isConstructed bool
}

// NewArticle creates a catalog item. The sale price must be strictly
// greater than the purchase price.
func NewArticle(
	id kernel.UUID,
	reference, designation string,
	purchase, sale float64,
	stock int,
	category string,
	vatCode int,
) (*Article, error) {
	a := &Article{
		category:      category,
		vatCode:       vatCode,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setReference(reference),
		a.setDesignation(designation),
		a.setPrices(purchase, sale),
		a.setStock(stock),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreArticle rehydrates an article from persistence.
func RestoreArticle(
	id kernel.UUID,
	reference, designation string,
	purchase, sale float64,
	stock int,
	category string,
	vatCode int,
) (*Article, error) {
	return NewArticle(id, reference, designation, purchase, sale, stock, category, vatCode)
}

// Validate ensures the instance came from a constructor.
func (a *Article) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArticleIsNotConstructed
	}
	return nil
}

func (a *Article) ID() kernel.UUID        { return a.id }
func (a *Article) Reference() string      { return a.reference }
func (a *Article) Designation() string    { return a.designation }
func (a *Article) PurchasePrice() float64 { return a.purchase }
func (a *Article) SalePrice() float64     { return a.sale }
func (a *Article) Stock() int             { return a.stock }
func (a *Article) Category() string       { return a.category }
func (a *Article) VATCode() int           { return a.vatCode }

// Margin returns the unit margin (sale - purchase); always positive for a
// valid article.
func (a *Article) Margin() float64 {
	return a.sale - a.purchase
}

func (a *Article) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Article) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	a.reference = reference
	return nil
}

func (a *Article) setDesignation(designation string) error {
	if designation == "" {
		return errs.NewValueIsRequiredError("designation")
	}
	a.designation = designation
	return nil
}

func (a *Article) setPrices(purchase, sale float64) error {
	if purchase < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"purchase price", fmt.Errorf("%v is negative", purchase))
	}
	if sale <= purchase {
		return errs.NewValueIsInvalidErrorWithCause(
			"sale price", fmt.Errorf("%v does not exceed the purchase price %v", sale, purchase))
	}
	a.purchase = purchase
	a.sale = sale
	return nil
}

func (a *Article) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock", fmt.Errorf("%d is negative", stock))
	}
	a.stock = stock
	return nil
}
