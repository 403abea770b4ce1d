package ports

import (
	"context"

	"cashcard-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CardRepository defines persistence operations for cash cards. Every read or
// mutation of an existing record is scoped by owner in the same query, so a
// foreign-owned id behaves exactly like a missing one.
type CardRepository interface {
	// Create inserts the card and fills in its store-assigned id. Id
	// allocation must stay unique under concurrent creates.
	Create(ctx context.Context, card *domain.CashCard) error
	// GetByIDAndOwner returns nil, nil when no record with that id belongs
	// to the owner.
	GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.CashCard, error)
	ListByOwner(ctx context.Context, owner string, page CardPage) ([]domain.CashCard, error)
	// UpdateAmount replaces the amount of the owner's record. Returns false
	// when no owned record matched.
	UpdateAmount(ctx context.Context, id int64, owner string, amount decimal.Decimal) (bool, error)
	// DeleteByIDAndOwner returns false when no owned record matched.
	DeleteByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error)
}

// UserRepository defines persistence operations for principals.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername returns nil, nil when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Sort fields and directions recognized by card listing. Anything else is
// defaulted rather than rejected.
type SortField string

type SortDirection string

const (
	SortFieldNone   SortField = ""       // stable store order (id ascending)
	SortFieldAmount SortField = "amount"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CardPage holds pagination + sort parameters for listing cards.
type CardPage struct {
	Page int // zero-based
	Size int
	Sort SortField
	Dir  SortDirection
}

// Normalize clamps out-of-range values and defaults unrecognized sort
// parameters instead of failing the request.
func (p CardPage) Normalize() CardPage {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Sort != SortFieldAmount {
		p.Sort = SortFieldNone
		p.Dir = SortAsc
	}
	if p.Dir != SortAsc && p.Dir != SortDesc {
		p.Dir = SortAsc
	}
	return p
}

// Offset returns the row offset of the page.
func (p CardPage) Offset() int {
	return p.Page * p.Size
}
