package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	catalogentity "estate_backend/internal/feature/catalog/domain/entity"
	catalogusecase "estate_backend/internal/feature/catalog/usecase"
	"estate_backend/internal/feature/portfolio/domain/entity"
)

// PortfolioRepository abstracts the persistence layer for portfolios.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type PortfolioRepository interface {
	// FindByID returns the user's portfolio, or ErrPortfolioNotFound.
	FindByID(ctx context.Context, userID string) (*entity.Portfolio, error)

	// All returns every portfolio.
	All(ctx context.Context) ([]*entity.Portfolio, error)

	// Save persists the portfolio; the backing collection is re-serialized
	// in full.
	Save(ctx context.Context, p *entity.Portfolio) error
}

// PropertyCatalog is the slice of the catalog the ledger consumes.
type PropertyCatalog interface {
	// ListAll returns the combined catalog.
	ListAll(ctx context.Context) ([]catalogentity.Property, error)

	// GetByID returns a property by id.
	GetByID(ctx context.Context, id string) (catalogentity.Property, error)

	// ApplyValueDelta multiplies every property value by (1 + deltaPct/100)
	// and returns the updated catalog.
	ApplyValueDelta(ctx context.Context, deltaPct float64) ([]catalogentity.Property, error)
}

// LedgerUsecase owns every portfolio mutation: buys, sells, market sweeps
// and lazy portfolio creation. A single mutex serializes mutating calls;
// each operation is one read-modify-write section over the repository, so
// no caller can observe a partially applied trade.
type LedgerUsecase struct {
	mu         sync.Mutex
	portfolios PortfolioRepository
	catalog    PropertyCatalog
}

// NewLedgerUsecase creates a new LedgerUsecase.
func NewLedgerUsecase(portfolios PortfolioRepository, catalog PropertyCatalog) *LedgerUsecase {
	return &LedgerUsecase{portfolios: portfolios, catalog: catalog}
}

// GetPortfolio returns the user's portfolio, creating an empty one with the
// standard starting cash on first access.
func (u *LedgerUsecase) GetPortfolio(ctx context.Context, userID string) (*entity.Portfolio, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.getOrCreate(ctx, userID)
}

// CreateInitialPortfolio provisions a portfolio for a freshly signed-up user
// with the starting cash recorded as an injection activity.
func (u *LedgerUsecase) CreateInitialPortfolio(ctx context.Context, userID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.portfolios.FindByID(ctx, userID); err == nil {
		return nil
	} else if !errors.Is(err, ErrPortfolioNotFound) {
		return err
	}

	p := entity.NewPortfolio(userID, u.propertiesCount(ctx))
	p.AppendActivity(entity.Activity{
		ID:          "act-" + uuid.NewString(),
		Type:        entity.ActivityInjection,
		AmountMMK:   entity.StartingCashMMK,
		Timestamp:   time.Now().UnixMilli(),
		Description: "Initial cash injection for new user",
	})
	return u.portfolios.Save(ctx, p)
}

// Buy spends amountMMK of the user's cash on a property position.
//
// The spend is share-quantized on every path: the amount is rounded down to
// a whole number of shares and only the quantized spend is debited from
// cash. The original product sized first and follow-up buys differently and
// debited the un-quantized amount; this engine applies the single policy
// uniformly.
func (u *LedgerUsecase) Buy(ctx context.Context, userID, propertyID string, amountMMK float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if amountMMK <= 0 {
		return ErrInvalidAmount
	}

	p, err := u.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	property, err := u.property(ctx, propertyID)
	if err != nil {
		return err
	}

	shares := int64(math.Floor(amountMMK / property.SharePriceMMK))
	if shares <= 0 {
		return fmt.Errorf("%w: %.0f MMK buys no whole share at %.0f MMK/share",
			ErrInvalidAmount, amountMMK, property.SharePriceMMK)
	}
	actualMMK := float64(shares) * property.SharePriceMMK

	if p.CashMMK < actualMMK {
		return ErrInsufficientCash
	}

	sharePctDelta := actualMMK / property.CurrentValueMMK * 100

	if h := p.FindHolding(propertyID); h != nil {
		h.UserValueMMK += actualMMK
		h.PurchaseValueMMK += actualMMK
		h.UserSharePct += sharePctDelta
		h.AveragePurchasePriceMMK = weightedAverage(
			h.AveragePurchasePriceMMK, h.SharesOwned, property.SharePriceMMK, shares)
		h.SharesOwned += shares
		h.CurrentSharePriceMMK = property.SharePriceMMK
		h.RecomputePnl()
	} else {
		p.Holdings = append(p.Holdings, entity.Holding{
			PropertyID:              propertyID,
			UserSharePct:            sharePctDelta,
			UserValueMMK:            actualMMK,
			PurchaseValueMMK:        actualMMK,
			PurchaseDate:            time.Now(),
			SharesOwned:             shares,
			CurrentSharePriceMMK:    property.SharePriceMMK,
			AveragePurchasePriceMMK: property.SharePriceMMK,
		})
	}

	p.CashMMK -= actualMMK
	p.AppendActivity(entity.Activity{
		ID:          "act-" + uuid.NewString(),
		Type:        entity.ActivityBuy,
		PropertyID:  propertyID,
		AmountMMK:   actualMMK,
		Timestamp:   time.Now().UnixMilli(),
		Description: fmt.Sprintf("Bought %.2f%% of %s", sharePctDelta, property.Name),
	})
	p.RecalculateTotals()
	p.LastUpdated = time.Now()

	return u.portfolios.Save(ctx, p)
}

// Sell liquidates amountMMK of the user's position in a property. The
// holding's value, share percentage, purchase basis and share count shrink
// by the sold fraction; a position whose value reaches zero is removed.
func (u *LedgerUsecase) Sell(ctx context.Context, userID, propertyID string, amountMMK float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if amountMMK <= 0 {
		return ErrInvalidAmount
	}

	p, err := u.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	property, err := u.property(ctx, propertyID)
	if err != nil {
		return err
	}

	h := p.FindHolding(propertyID)
	if h == nil {
		return ErrHoldingNotFound
	}
	if h.UserValueMMK < amountMMK {
		return ErrInsufficientShares
	}

	newValue := h.UserValueMMK - amountMMK
	if newValue <= 0 {
		p.RemoveHolding(propertyID)
	} else {
		sellRatio := amountMMK / h.UserValueMMK
		h.PurchaseValueMMK -= h.PurchaseValueMMK * sellRatio
		h.SharesOwned -= int64(math.Round(float64(h.SharesOwned) * sellRatio))
		h.UserValueMMK = newValue
		h.UserSharePct = newValue / property.CurrentValueMMK * 100
		h.CurrentSharePriceMMK = property.SharePriceMMK
		h.RecomputePnl()
	}

	p.CashMMK += amountMMK
	p.AppendActivity(entity.Activity{
		ID:          "act-" + uuid.NewString(),
		Type:        entity.ActivitySell,
		PropertyID:  propertyID,
		AmountMMK:   amountMMK,
		Timestamp:   time.Now().UnixMilli(),
		Description: fmt.Sprintf("Sold %.2f%% of %s", amountMMK/property.CurrentValueMMK*100, property.Name),
	})
	p.RecalculateTotals()
	p.LastUpdated = time.Now()

	return u.portfolios.Save(ctx, p)
}

// getOrCreate loads the portfolio, lazily creating an empty one. Callers
// must hold the mutex.
func (u *LedgerUsecase) getOrCreate(ctx context.Context, userID string) (*entity.Portfolio, error) {
	p, err := u.portfolios.FindByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrPortfolioNotFound) {
		return nil, err
	}

	p = entity.NewPortfolio(userID, u.propertiesCount(ctx))
	if err := u.portfolios.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// property resolves a catalog entry, translating the catalog's not-found
// into this package's sentinel.
func (u *LedgerUsecase) property(ctx context.Context, id string) (catalogentity.Property, error) {
	property, err := u.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogusecase.ErrPropertyNotFound) {
			return catalogentity.Property{}, ErrPropertyNotFound
		}
		return catalogentity.Property{}, err
	}
	return property, nil
}

// propertiesCount is best effort; a catalog failure only affects the
// snapshot's informational count.
func (u *LedgerUsecase) propertiesCount(ctx context.Context) int {
	properties, err := u.catalog.ListAll(ctx)
	if err != nil {
		return 0
	}
	return len(properties)
}

// weightedAverage folds a new purchase into an average share price.
func weightedAverage(avg float64, shares int64, price float64, bought int64) float64 {
	total := shares + bought
	if total <= 0 {
		return price
	}
	return (avg*float64(shares) + price*float64(bought)) / float64(total)
}
