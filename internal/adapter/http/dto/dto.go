package dto

import (
	"strings"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateCardRequest is the request body for card creation. Only the amount is
// client-writable; an id or owner in the payload is simply not bound.
type CreateCardRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateCardRequest is the request body for a full card update. The optional
// id is cross-checked against the path and never used for lookup.
type UpdateCardRequest struct {
	ID     *int64          `json:"id,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// CardResponse is the wire shape of a cash card.
type CardResponse struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}

// ToCardResponse maps a domain card to its wire shape.
func ToCardResponse(c *domain.CashCard) CardResponse {
	return CardResponse{
		ID:     c.ID,
		Amount: c.Amount,
		Owner:  c.Owner,
	}
}

// ToCardResponses maps a page of cards. Always returns a non-nil slice so an
// empty page serializes as [].
func ToCardResponses(cards []domain.CashCard) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, ToCardResponse(&cards[i]))
	}
	return out
}

// ListCardsQuery holds the pagination/sort query parameters.
type ListCardsQuery struct {
	Page int    `form:"page,default=0"`
	Size int    `form:"size,default=20"`
	Sort string `form:"sort"` // "amount,desc" style
}

// ToPage parses the sort expression and hands the rest to the service, which
// defaults anything unrecognized.
func (q ListCardsQuery) ToPage() ports.CardPage {
	page := ports.CardPage{
		Page: q.Page,
		Size: q.Size,
	}
	if q.Sort == "" {
		return page
	}

	parts := strings.SplitN(q.Sort, ",", 2)
	page.Sort = ports.SortField(strings.ToLower(strings.TrimSpace(parts[0])))
	if len(parts) == 2 {
		page.Dir = ports.SortDirection(strings.ToLower(strings.TrimSpace(parts[1])))
	} else {
		page.Dir = ports.SortAsc
	}
	return page
}

// LoginRequest is the request body for the token login flow.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}
