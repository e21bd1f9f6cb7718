package usecase

import (
	"context"
	"time"

	"estate_backend/internal/feature/portfolio/domain/entity"
)

// GuestUserID identifies the synthesized read-only portfolio served to
// unauthenticated callers.
const GuestUserID = "guest"

// GuestPortfolio builds the public market overview for unauthenticated
// callers. It is a pure projection over the catalog: no cash, holdings or
// activities, and it is never persisted, so it cannot collide with a real
// user's portfolio.
func (u *LedgerUsecase) GuestPortfolio(ctx context.Context) (*entity.Portfolio, error) {
	properties, err := u.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var totalMarketValue float64
	for _, p := range properties {
		totalMarketValue += p.CurrentValueMMK
	}

	return &entity.Portfolio{
		UserID:        GuestUserID,
		TotalValueMMK: totalMarketValue,
		Holdings:      []entity.Holding{},
		Activities:    []entity.Activity{},
		Snapshot: entity.Snapshot{
			CompanyValueMMK: totalMarketValue,
			CompanyShares:   entity.DefaultCompanyShares,
			PropertiesCount: len(properties),
		},
		LastUpdated: time.Now(),
	}, nil
}
