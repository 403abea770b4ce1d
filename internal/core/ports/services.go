package ports

import (
	"context"
	"time"

	"cashcard-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CardService is the owner-scoped business logic over the card repository.
// The principal argument is the authenticated identity of the caller; it is
// the only authorization key. Absence and foreign ownership are reported as
// the same not-found error.
type CardService interface {
	FindByID(ctx context.Context, id int64, principal string) (*domain.CashCard, error)
	// Create stamps the principal as owner; any client-supplied id or owner
	// has already been discarded by the transport layer.
	Create(ctx context.Context, amount decimal.Decimal, principal string) (*domain.CashCard, error)
	ListByOwner(ctx context.Context, principal string, page CardPage) ([]domain.CashCard, error)
	// Update replaces the amount. bodyID, when non-nil, must agree with id.
	Update(ctx context.Context, id int64, bodyID *int64, amount decimal.Decimal, principal string) error
	Delete(ctx context.Context, id int64, principal string) error
}

// AuthService resolves credentials to principals.
type AuthService interface {
	// Verify checks a username/password pair and returns the matching user.
	// Unknown username and wrong password are the same error.
	Verify(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles bearer token operations.
type TokenService interface {
	Generate(username string, roles []string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	Username string
	Roles    []string
}
