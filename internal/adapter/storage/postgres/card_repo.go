package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CardRepo implements ports.CardRepository. Every query on existing records
// carries the owner in its predicate, so a foreign owner sees no rows.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// Create inserts a new card. The id comes from the BIGSERIAL sequence, which
// keeps allocation unique under concurrent creates.
func (r *CardRepo) Create(ctx context.Context, card *domain.CashCard) error {
	query := `INSERT INTO cash_cards (amount, owner) VALUES ($1, $2) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, card.Amount, card.Owner).Scan(&card.ID); err != nil {
		return fmt.Errorf("insert cash card: %w", err)
	}
	return nil
}

// GetByIDAndOwner fetches a card by id, scoped to its owner.
func (r *CardRepo) GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.CashCard, error) {
	query := `SELECT id, amount, owner FROM cash_cards WHERE id = $1 AND owner = $2`

	c := &domain.CashCard{}
	err := r.pool.QueryRow(ctx, query, id, owner).Scan(&c.ID, &c.Amount, &c.Owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash card by id and owner: %w", err)
	}
	return c, nil
}

// ListByOwner fetches one page of an owner's cards. The ORDER BY clause is
// assembled from the enumerated sort values only, never from raw input.
func (r *CardRepo) ListByOwner(ctx context.Context, owner string, page ports.CardPage) ([]domain.CashCard, error) {
	query := fmt.Sprintf(
		`SELECT id, amount, owner FROM cash_cards WHERE owner = $1 ORDER BY %s LIMIT $2 OFFSET $3`,
		orderBy(page),
	)

	rows, err := r.pool.Query(ctx, query, owner, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list cash cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.CashCard
	for rows.Next() {
		var c domain.CashCard
		if err := rows.Scan(&c.ID, &c.Amount, &c.Owner); err != nil {
			return nil, fmt.Errorf("scan cash card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cash cards: %w", err)
	}
	return cards, nil
}

// UpdateAmount replaces the amount of the owner's card. Returns false when
// the id does not exist under this owner.
func (r *CardRepo) UpdateAmount(ctx context.Context, id int64, owner string, amount decimal.Decimal) (bool, error) {
	query := `UPDATE cash_cards SET amount = $1 WHERE id = $2 AND owner = $3`

	tag, err := r.pool.Exec(ctx, query, amount, id, owner)
	if err != nil {
		return false, fmt.Errorf("update cash card amount: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByIDAndOwner removes the owner's card. Returns false when the id
// does not exist under this owner.
func (r *CardRepo) DeleteByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error) {
	query := `DELETE FROM cash_cards WHERE id = $1 AND owner = $2`

	tag, err := r.pool.Exec(ctx, query, id, owner)
	if err != nil {
		return false, fmt.Errorf("delete cash card: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// orderBy maps normalized page parameters to an ORDER BY clause. The id
// tie-break keeps pages stable when amounts repeat.
func orderBy(page ports.CardPage) string {
	if page.Sort == ports.SortFieldAmount {
		if page.Dir == ports.SortDesc {
			return "amount DESC, id ASC"
		}
		return "amount ASC, id ASC"
	}
	return "id ASC"
}
