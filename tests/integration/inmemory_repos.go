package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"

	"github.com/shopspring/decimal"
)

// --- In-Memory Card Repo ---

type inMemoryCardRepo struct {
	mu     sync.RWMutex
	cards  map[int64]domain.CashCard
	nextID int64
}

func newInMemoryCardRepo() *inMemoryCardRepo {
	return &inMemoryCardRepo{cards: make(map[int64]domain.CashCard), nextID: 1}
}

func (r *inMemoryCardRepo) Create(ctx context.Context, card *domain.CashCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card.ID = r.nextID
	r.nextID++
	r.cards[card.ID] = *card
	return nil
}

func (r *inMemoryCardRepo) GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.CashCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[id]
	if !ok || card.Owner != owner {
		return nil, nil
	}
	return &card, nil
}

func (r *inMemoryCardRepo) ListByOwner(ctx context.Context, owner string, page ports.CardPage) ([]domain.CashCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []domain.CashCard
	for _, card := range r.cards {
		if card.Owner == owner {
			owned = append(owned, card)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		if page.Sort == ports.SortFieldAmount && !owned[i].Amount.Equal(owned[j].Amount) {
			if page.Dir == ports.SortDesc {
				return owned[i].Amount.GreaterThan(owned[j].Amount)
			}
			return owned[i].Amount.LessThan(owned[j].Amount)
		}
		return owned[i].ID < owned[j].ID
	})

	start := page.Offset()
	if start >= len(owned) {
		return []domain.CashCard{}, nil
	}
	end := start + page.Size
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], nil
}

func (r *inMemoryCardRepo) UpdateAmount(ctx context.Context, id int64, owner string, amount decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok || card.Owner != owner {
		return false, nil
	}
	card.Amount = amount
	r.cards[id] = card
	return true, nil
}

func (r *inMemoryCardRepo) DeleteByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok || card.Owner != owner {
		return false, nil
	}
	delete(r.cards, id)
	return true, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return fmt.Errorf("username already exists")
	}
	r.users[user.Username] = user
	return nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}
