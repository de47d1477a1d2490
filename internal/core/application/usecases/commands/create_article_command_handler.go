package commands

import (
	"context"

	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/kernel"
)

// CreateArticleCommandHandler handles catalog item creation. Reference
// uniqueness is enforced by storage and surfaces as errs.ErrDuplicateKey.
type CreateArticleCommandHandler struct {
	uowFactory ArticleUoWFactory
}

func NewCreateArticleCommandHandler(uowFactory ArticleUoWFactory) CreateArticleCommandHandler {
	return CreateArticleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new article's identifier.
func (h CreateArticleCommandHandler) Handle(ctx context.Context, cmd CreateArticleCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newArticle, err := article.NewArticle(
		kernel.NewUUID(),
		cmd.Reference(),
		cmd.Designation(),
		cmd.Purchase(),
		cmd.Sale(),
		cmd.Stock(),
		cmd.Category(),
		cmd.VATCode(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ArticleRepository().Add(ctx, newArticle); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newArticle.ID(), nil
}
