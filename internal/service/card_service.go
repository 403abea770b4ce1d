package service

import (
	"context"
	"fmt"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"
	"cashcard-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CardServiceImpl implements ports.CardService. It holds no state of its own;
// all record state lives in the repository.
type CardServiceImpl struct {
	cardRepo ports.CardRepository
	log      zerolog.Logger
}

// NewCardService creates a new CardServiceImpl.
func NewCardService(cardRepo ports.CardRepository, log zerolog.Logger) *CardServiceImpl {
	return &CardServiceImpl{
		cardRepo: cardRepo,
		log:      log,
	}
}

// FindByID returns the card only when it exists and belongs to the principal.
func (s *CardServiceImpl) FindByID(ctx context.Context, id int64, principal string) (*domain.CashCard, error) {
	card, err := s.cardRepo.GetByIDAndOwner(ctx, id, principal)
	if err != nil {
		return nil, apperror.StoreUnavailable(fmt.Errorf("find card: %w", err))
	}
	if card == nil {
		return nil, apperror.ErrCardNotFound()
	}
	return card, nil
}

// Create persists a new card owned by the principal and returns it with the
// store-assigned id.
func (s *CardServiceImpl) Create(ctx context.Context, amount decimal.Decimal, principal string) (*domain.CashCard, error) {
	if amount.IsNegative() {
		return nil, apperror.Validation("amount must not be negative")
	}

	card := &domain.CashCard{
		Amount: amount,
		Owner:  principal,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, apperror.StoreUnavailable(fmt.Errorf("create card: %w", err))
	}

	s.log.Debug().Int64("card_id", card.ID).Str("owner", principal).Msg("cash card created")
	return card, nil
}

// ListByOwner returns one page of the principal's cards. The slice is never
// nil so an empty page serializes as [] rather than null.
func (s *CardServiceImpl) ListByOwner(ctx context.Context, principal string, page ports.CardPage) ([]domain.CashCard, error) {
	cards, err := s.cardRepo.ListByOwner(ctx, principal, page.Normalize())
	if err != nil {
		return nil, apperror.StoreUnavailable(fmt.Errorf("list cards: %w", err))
	}
	if cards == nil {
		cards = []domain.CashCard{}
	}
	return cards, nil
}

// Update replaces the amount of the principal's card. The id and owner are
// never touched. A body id disagreeing with the path id is rejected before
// anything reaches the store.
func (s *CardServiceImpl) Update(ctx context.Context, id int64, bodyID *int64, amount decimal.Decimal, principal string) error {
	if bodyID != nil && *bodyID != id {
		return apperror.ErrCardIDMismatch()
	}
	if amount.IsNegative() {
		return apperror.Validation("amount must not be negative")
	}

	updated, err := s.cardRepo.UpdateAmount(ctx, id, principal, amount)
	if err != nil {
		return apperror.StoreUnavailable(fmt.Errorf("update card: %w", err))
	}
	if !updated {
		return apperror.ErrCardNotFound()
	}
	return nil
}

// Delete removes the principal's card permanently. A second delete of the
// same id reports not found.
func (s *CardServiceImpl) Delete(ctx context.Context, id int64, principal string) error {
	deleted, err := s.cardRepo.DeleteByIDAndOwner(ctx, id, principal)
	if err != nil {
		return apperror.StoreUnavailable(fmt.Errorf("delete card: %w", err))
	}
	if !deleted {
		return apperror.ErrCardNotFound()
	}

	s.log.Debug().Int64("card_id", id).Str("owner", principal).Msg("cash card deleted")
	return nil
}
