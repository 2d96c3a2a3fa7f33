package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCommission(t *testing.T) {
	tt := []struct {
		name     string
		amount   int64
		basetime int64
		wompi    int64
		want     int64
	}{
		{"standard split", 100000, 10, 5, 15000},
		{"zero percentages", 100000, 0, 0, 0},
		{"zero amount", 0, 10, 5, 0},
		{"full take", 50000, 50, 50, 50000},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := Commission(
				decimal.NewFromInt(tc.amount),
				decimal.NewFromInt(tc.basetime),
				decimal.NewFromInt(tc.wompi),
			)
			require.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s", got)
		})
	}
}

func TestReferralShare(t *testing.T) {
	got := ReferralShare(decimal.NewFromInt(100000), decimal.NewFromInt(20))
	require.True(t, got.Equal(decimal.NewFromInt(20000)), "got %s", got)
}

// The referral share widens the commission, never the client's charge: the
// supplier's net shrinks by exactly the promoter's cut.
func TestSplitWithReferral(t *testing.T) {
	amount := decimal.NewFromInt(100000)

	commission := Commission(amount, decimal.NewFromInt(10), decimal.NewFromInt(5))
	share := ReferralShare(amount, decimal.NewFromInt(20))
	commission = commission.Add(share)

	require.True(t, commission.Equal(decimal.NewFromInt(35000)), "commission %s", commission)
	require.True(t, amount.Sub(commission).Equal(decimal.NewFromInt(65000)))
	require.True(t, share.Equal(decimal.NewFromInt(20000)))
}

func TestSplitWithoutReferral(t *testing.T) {
	amount := decimal.NewFromInt(100000)

	commission := Commission(amount, decimal.NewFromInt(10), decimal.NewFromInt(5))

	require.True(t, commission.Equal(decimal.NewFromInt(15000)))
	require.True(t, amount.Sub(commission).Equal(decimal.NewFromInt(85000)))
}
