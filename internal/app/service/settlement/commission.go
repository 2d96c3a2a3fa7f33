package settlement

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Commission is the platform's deducted share of a meet amount: the base-time
// fee plus the payment-processor fee, each a 0-100 percentage.
func Commission(amount, basetimePct, wompiPct decimal.Decimal) decimal.Decimal {
	return basetimePct.Add(wompiPct).Div(hundred).Mul(amount)
}

// ReferralShare is the promoter's cut. It is added to the commission and paid
// to the promoter: a re-split of the platform's take, never an additional
// charge to the client.
func ReferralShare(amount, referralPct decimal.Decimal) decimal.Decimal {
	return referralPct.Div(hundred).Mul(amount)
}
