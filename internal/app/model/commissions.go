package model

import "github.com/shopspring/decimal"

// Commissions holds the global commission percentages, each a 0-100 value.
// They are read fresh on every settlement event and passed down by value;
// nothing caches them across a meet's lifetime.
type Commissions struct {
	Basetime decimal.Decimal
	Wompi    decimal.Decimal
	Referral decimal.Decimal
}
