package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPortfolio(t *testing.T) {
	t.Parallel()

	p := NewPortfolio("user-1", 3)

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, float64(StartingCashMMK), p.CashMMK)
	assert.Zero(t, p.TotalValueMMK)
	assert.Empty(t, p.Holdings)
	assert.Empty(t, p.Activities)
	assert.Equal(t, float64(DefaultCompanyValueMMK), p.Snapshot.CompanyValueMMK)
	assert.Equal(t, int64(DefaultCompanyShares), p.Snapshot.CompanyShares)
	assert.Equal(t, 3, p.Snapshot.PropertiesCount)
}

func TestPortfolio_RecalculateTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		holdings        []Holding
		wantTotal       float64
		wantPnlAbs      float64
		wantPnlPct      float64
		wantWeightedPct float64
	}{
		{
			name:      "no holdings",
			holdings:  nil,
			wantTotal: 0, wantPnlAbs: 0, wantPnlPct: 0, wantWeightedPct: 0,
		},
		{
			name: "single holding with gain",
			holdings: []Holding{
				{UserValueMMK: 15_000_000, PurchaseValueMMK: 10_000_000, PnlAbs: 5_000_000},
			},
			wantTotal:  15_000_000,
			wantPnlAbs: 5_000_000,
			wantPnlPct: 50,
			// 15M / 9B * 100
			wantWeightedPct: 15_000_000.0 / DefaultCompanyValueMMK * 100,
		},
		{
			name: "mixed gain and loss",
			holdings: []Holding{
				{UserValueMMK: 12_000_000, PurchaseValueMMK: 10_000_000, PnlAbs: 2_000_000},
				{UserValueMMK: 8_000_000, PurchaseValueMMK: 10_000_000, PnlAbs: -2_000_000},
			},
			wantTotal:       20_000_000,
			wantPnlAbs:      0,
			wantPnlPct:      0,
			wantWeightedPct: 20_000_000.0 / DefaultCompanyValueMMK * 100,
		},
		{
			name: "zero purchase basis does not divide by zero",
			holdings: []Holding{
				{UserValueMMK: 1_000_000, PurchaseValueMMK: 0, PnlAbs: 1_000_000},
			},
			wantTotal:       1_000_000,
			wantPnlAbs:      1_000_000,
			wantPnlPct:      0,
			wantWeightedPct: 1_000_000.0 / DefaultCompanyValueMMK * 100,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPortfolio("user-1", 0)
			p.Holdings = tt.holdings
			p.RecalculateTotals()

			assert.InDelta(t, tt.wantTotal, p.TotalValueMMK, 1e-6)
			assert.InDelta(t, tt.wantPnlAbs, p.NetPnlAbs, 1e-6)
			assert.InDelta(t, tt.wantPnlPct, p.NetPnlPct, 1e-6)
			assert.InDelta(t, tt.wantWeightedPct, p.Snapshot.WeightedSharePct, 1e-9)
		})
	}
}

func TestPortfolio_RecalculateTotals_Idempotent(t *testing.T) {
	t.Parallel()

	p := NewPortfolio("user-1", 2)
	p.Holdings = []Holding{
		{UserValueMMK: 12_000_000, PurchaseValueMMK: 10_000_000, PnlAbs: 2_000_000},
		{UserValueMMK: 3_000_000, PurchaseValueMMK: 4_000_000, PnlAbs: -1_000_000},
	}

	p.RecalculateTotals()
	first := *p
	p.RecalculateTotals()

	assert.Equal(t, first.TotalValueMMK, p.TotalValueMMK)
	assert.Equal(t, first.NetPnlAbs, p.NetPnlAbs)
	assert.Equal(t, first.NetPnlPct, p.NetPnlPct)
	assert.Equal(t, first.Snapshot.WeightedSharePct, p.Snapshot.WeightedSharePct)
}

func TestPortfolio_AppendActivity_CapsLog(t *testing.T) {
	t.Parallel()

	p := NewPortfolio("user-1", 0)
	for i := 0; i < 15; i++ {
		p.AppendActivity(Activity{ID: fmt.Sprintf("act-%d", i), Type: ActivityBuy})
	}

	assert.Len(t, p.Activities, 10)
	// Newest first, oldest silently discarded
	assert.Equal(t, "act-14", p.Activities[0].ID)
	assert.Equal(t, "act-5", p.Activities[9].ID)
}

func TestPortfolio_FindAndRemoveHolding(t *testing.T) {
	t.Parallel()

	p := NewPortfolio("user-1", 0)
	p.Holdings = []Holding{
		{PropertyID: "prop-a", UserValueMMK: 1},
		{PropertyID: "prop-b", UserValueMMK: 2},
	}

	h := p.FindHolding("prop-b")
	assert.NotNil(t, h)
	assert.Equal(t, float64(2), h.UserValueMMK)

	assert.Nil(t, p.FindHolding("prop-missing"))

	p.RemoveHolding("prop-a")
	assert.Len(t, p.Holdings, 1)
	assert.Equal(t, "prop-b", p.Holdings[0].PropertyID)

	// Removing an absent holding is a no-op
	p.RemoveHolding("prop-missing")
	assert.Len(t, p.Holdings, 1)
}

func TestHolding_RecomputePnl(t *testing.T) {
	t.Parallel()

	h := Holding{UserValueMMK: 15_000_000, PurchaseValueMMK: 10_000_000}
	h.RecomputePnl()
	assert.InDelta(t, 5_000_000, h.PnlAbs, 1e-6)
	assert.InDelta(t, 50, h.PnlPct, 1e-6)

	h = Holding{UserValueMMK: 1_000_000, PurchaseValueMMK: 0}
	h.RecomputePnl()
	assert.Equal(t, float64(1_000_000), h.PnlAbs)
	assert.Zero(t, h.PnlPct)
}

func TestPortfolio_Clone(t *testing.T) {
	t.Parallel()

	p := NewPortfolio("user-1", 1)
	p.Holdings = []Holding{{PropertyID: "prop-a", UserValueMMK: 5}}
	p.AppendActivity(Activity{ID: "act-1"})

	cp := p.Clone()
	cp.Holdings[0].UserValueMMK = 99
	cp.Activities[0].ID = "changed"
	cp.CashMMK = 0

	assert.Equal(t, float64(5), p.Holdings[0].UserValueMMK)
	assert.Equal(t, "act-1", p.Activities[0].ID)
	assert.Equal(t, float64(StartingCashMMK), p.CashMMK)
}
