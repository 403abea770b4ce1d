package domain

import (
	"github.com/shopspring/decimal"
)

// CashCard is a single stored-value card record. The id is assigned by the
// store on insert and never changes; the owner is stamped from the
// authenticated principal at creation time and is immutable afterwards.
type CashCard struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}

// OwnedBy reports whether the card belongs to the given principal.
func (c *CashCard) OwnedBy(principal string) bool {
	return c.Owner == principal
}
