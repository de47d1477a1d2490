package ports

import (
	"context"

	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/client"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/position"
	"gescom/internal/core/domain/model/staff"
)

// ArticleRepository defines the persistence contract for catalog items.
// Reference uniqueness is enforced by the store; violations surface as
// errs.ErrDuplicateKey.
type ArticleRepository interface {
	Add(ctx context.Context, aggregate *article.Article) error
	Update(ctx context.Context, aggregate *article.Article) error
	Get(ctx context.Context, id kernel.UUID) (*article.Article, error)
	GetByReference(ctx context.Context, reference string) (*article.Article, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// ClientRepository defines the persistence contract for client records.
type ClientRepository interface {
	// Add persists a new client and assigns its serial to the aggregate.
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, no int64) (*client.Client, error)
	Delete(ctx context.Context, no int64) error
}

// StaffRepository defines the persistence contract for staff records.
type StaffRepository interface {
	// Add persists a new staff member and assigns its serial to the
	// aggregate.
	Add(ctx context.Context, aggregate *staff.Staff) error
	Update(ctx context.Context, aggregate *staff.Staff) error
	Get(ctx context.Context, id int64) (*staff.Staff, error)
	GetByLogin(ctx context.Context, login string) (*staff.Staff, error)

	// CountByPositionCode counts staff attached to a position. The
	// position delete command refuses to remove referenced positions.
	CountByPositionCode(ctx context.Context, code string) (int64, error)

	Delete(ctx context.Context, id int64) error
}

// PositionRepository defines the persistence contract for job positions.
// Code uniqueness is enforced by the store.
type PositionRepository interface {
	Add(ctx context.Context, aggregate *position.Position) error
	Update(ctx context.Context, aggregate *position.Position) error
	Get(ctx context.Context, id kernel.UUID) (*position.Position, error)
	GetByCode(ctx context.Context, code string) (*position.Position, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
