// Package entity defines the domain entities for the portfolio feature.
package entity

import "time"

const (
	// StartingCashMMK is the cash balance granted to every new portfolio.
	StartingCashMMK = 100_000_000

	// DefaultCompanyValueMMK is the company-wide valuation used for new snapshots.
	DefaultCompanyValueMMK = 9_000_000_000

	// DefaultCompanyShares is the total number of company shares.
	DefaultCompanyShares = 1_000_000

	// maxActivities caps the activity log; older entries are discarded.
	maxActivities = 10
)

// ActivityType classifies a ledger event.
type ActivityType string

const (
	ActivityBuy       ActivityType = "buy"
	ActivitySell      ActivityType = "sell"
	ActivityInjection ActivityType = "injection"
)

// Activity is an immutable record of a buy, sell or cash-injection event.
// A portfolio keeps only the most recent entries, not a full audit trail.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	PropertyID  string       `json:"propertyId"`
	AmountMMK   float64      `json:"amountMMK"`
	Timestamp   int64        `json:"ts"`
	Description string       `json:"description"`
}

// Holding is a user's fractional ownership position in one property.
// Property records are referenced by id, never duplicated into the holding.
type Holding struct {
	PropertyID              string    `json:"propertyId"`
	UserSharePct            float64   `json:"userSharePct"`
	UserValueMMK            float64   `json:"userValueMMK"`
	PnlAbs                  float64   `json:"pnlAbs"`
	PnlPct                  float64   `json:"pnlPct"`
	PurchaseDate            time.Time `json:"purchaseDate"`
	PurchaseValueMMK        float64   `json:"purchaseValueMMK"`
	SharesOwned             int64     `json:"sharesOwned"`
	CurrentSharePriceMMK    float64   `json:"currentSharePriceMMK"`
	AveragePurchasePriceMMK float64   `json:"averagePurchasePriceMMK"`
}

// RecomputePnl re-derives the holding's P&L from its current value and
// unchanged purchase basis.
func (h *Holding) RecomputePnl() {
	h.PnlAbs = h.UserValueMMK - h.PurchaseValueMMK
	if h.PurchaseValueMMK > 0 {
		h.PnlPct = h.PnlAbs / h.PurchaseValueMMK * 100
	} else {
		h.PnlPct = 0
	}
}

// Snapshot is the derived company-wide aggregate exposed alongside a
// portfolio. It is recomputed, never independently stored.
type Snapshot struct {
	CompanyValueMMK  float64 `json:"companyValueMMK"`
	CompanyShares    int64   `json:"companyShares"`
	WeightedSharePct float64 `json:"weightedSharePct"`
	PropertiesCount  int     `json:"propertiesCount"`
}

// Portfolio is the per-user aggregate: cash balance, holdings, derived P&L,
// company snapshot and the capped activity log. It exclusively owns its
// holdings and activities.
type Portfolio struct {
	UserID        string     `json:"userId"`
	CashMMK       float64    `json:"cashMMK"`
	TotalValueMMK float64    `json:"totalValueMMK"`
	NetPnlAbs     float64    `json:"netPnlAbs"`
	NetPnlPct     float64    `json:"netPnlPct"`
	Holdings      []Holding  `json:"holdings"`
	Snapshot      Snapshot   `json:"snapshot"`
	Activities    []Activity `json:"activities"`
	LastUpdated   time.Time  `json:"lastUpdated"`
}

// NewPortfolio creates an empty portfolio with the standard starting cash.
func NewPortfolio(userID string, propertiesCount int) *Portfolio {
	return &Portfolio{
		UserID:  userID,
		CashMMK: StartingCashMMK,
		Snapshot: Snapshot{
			CompanyValueMMK: DefaultCompanyValueMMK,
			CompanyShares:   DefaultCompanyShares,
			PropertiesCount: propertiesCount,
		},
		Holdings:    []Holding{},
		Activities:  []Activity{},
		LastUpdated: time.Now(),
	}
}

// FindHolding returns a pointer to the holding for the given property,
// or nil if the portfolio has no position in it.
func (p *Portfolio) FindHolding(propertyID string) *Holding {
	for i := range p.Holdings {
		if p.Holdings[i].PropertyID == propertyID {
			return &p.Holdings[i]
		}
	}
	return nil
}

// RemoveHolding deletes the holding for the given property, if present.
func (p *Portfolio) RemoveHolding(propertyID string) {
	for i := range p.Holdings {
		if p.Holdings[i].PropertyID == propertyID {
			p.Holdings = append(p.Holdings[:i], p.Holdings[i+1:]...)
			return
		}
	}
}

// AppendActivity prepends an activity and trims the log to the cap.
func (p *Portfolio) AppendActivity(a Activity) {
	p.Activities = append([]Activity{a}, p.Activities...)
	if len(p.Activities) > maxActivities {
		p.Activities = p.Activities[:maxActivities]
	}
}

// RecalculateTotals re-derives every aggregate field from the holdings.
// Totals are always recomputed in full, never incrementally patched, so
// they cannot drift from the holdings they summarize.
func (p *Portfolio) RecalculateTotals() {
	var totalValue, totalPnl, totalPurchase float64
	for i := range p.Holdings {
		totalValue += p.Holdings[i].UserValueMMK
		totalPnl += p.Holdings[i].PnlAbs
		totalPurchase += p.Holdings[i].PurchaseValueMMK
	}

	p.TotalValueMMK = totalValue
	p.NetPnlAbs = totalPnl
	if totalPurchase > 0 {
		p.NetPnlPct = totalPnl / totalPurchase * 100
	} else {
		p.NetPnlPct = 0
	}

	if totalValue > 0 && p.Snapshot.CompanyValueMMK > 0 {
		p.Snapshot.WeightedSharePct = totalValue / p.Snapshot.CompanyValueMMK * 100
	} else {
		p.Snapshot.WeightedSharePct = 0
	}
}

// Clone returns a deep copy of the portfolio.
func (p *Portfolio) Clone() *Portfolio {
	cp := *p
	cp.Holdings = append([]Holding(nil), p.Holdings...)
	cp.Activities = append([]Activity(nil), p.Activities...)
	return &cp
}
