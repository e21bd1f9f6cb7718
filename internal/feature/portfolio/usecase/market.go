package usecase

import (
	"context"
	"fmt"
	"time"
)

// ApplyMarketDelta applies a uniform percentage change to every property
// value, then revalues every holding of every portfolio against the new
// prices and recomputes all aggregates. This is a full-catalog,
// full-portfolio-set sweep; data volumes are demo-scale, so O(properties +
// users x holdings) per tick is fine.
func (u *LedgerUsecase) ApplyMarketDelta(ctx context.Context, deltaPct float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	properties, err := u.catalog.ApplyValueDelta(ctx, deltaPct)
	if err != nil {
		return fmt.Errorf("failed to reprice catalog: %w", err)
	}

	valueByID := make(map[string]float64, len(properties))
	priceByID := make(map[string]float64, len(properties))
	for _, p := range properties {
		valueByID[p.ID] = p.CurrentValueMMK
		priceByID[p.ID] = p.SharePriceMMK
	}

	portfolios, err := u.portfolios.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list portfolios: %w", err)
	}

	for _, p := range portfolios {
		for i := range p.Holdings {
			h := &p.Holdings[i]
			value, ok := valueByID[h.PropertyID]
			if !ok {
				// Property vanished from the catalog; the holding keeps its
				// last known value.
				continue
			}
			h.UserValueMMK = h.UserSharePct / 100 * value
			h.CurrentSharePriceMMK = priceByID[h.PropertyID]
			h.RecomputePnl()
		}
		p.RecalculateTotals()
		p.LastUpdated = time.Now()

		if err := u.portfolios.Save(ctx, p); err != nil {
			return fmt.Errorf("failed to save portfolio %s: %w", p.UserID, err)
		}
	}

	return nil
}
