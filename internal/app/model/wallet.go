package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet accumulates relative increments only; the stored values are never
// overwritten with absolutes, which keeps concurrent settlements commutative.
type Wallet struct {
	UserID    uuid.UUID
	Balance   decimal.Decimal
	Refund    decimal.Decimal
	UpdatedAt time.Time
}

// MarshalJSON implements the json.Marshaler interface.
func (w Wallet) MarshalJSON() ([]byte, error) {
	o := struct {
		Balance   float64   `json:"balance"`
		Refund    float64   `json:"refund"`
		UpdatedAt time.Time `json:"updatedAt"`
	}{
		Balance:   w.Balance.InexactFloat64(),
		Refund:    w.Refund.InexactFloat64(),
		UpdatedAt: w.UpdatedAt,
	}

	return json.Marshal(o)
}
