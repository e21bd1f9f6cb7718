// Package adapters provides the repository implementations for the
// portfolio feature.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"estate_backend/internal/feature/portfolio/domain/entity"
	"estate_backend/internal/feature/portfolio/usecase"
	"estate_backend/internal/platform/kv"
)

// portfoliosKey is the blob under which the whole portfolios-by-user map is
// persisted. The map is re-serialized in full after every mutation; there
// are no partial writes and no per-user blobs.
const portfoliosKey = "portfolios"

// BlobStore abstracts the key-value blob storage portfolios persist into.
// Following Go convention: interfaces are defined by the consumer (adapters),
// not the provider (platform/kv).
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// PortfolioKV keeps every portfolio in memory and mirrors the full map into
// a single JSON blob on each save.
type PortfolioKV struct {
	mu         sync.RWMutex
	store      BlobStore
	seed       map[string]*entity.Portfolio
	portfolios map[string]*entity.Portfolio
}

var _ usecase.PortfolioRepository = (*PortfolioKV)(nil)

// NewPortfolioKV creates a PortfolioKV over the given blob store and seed
// portfolios.
func NewPortfolioKV(store BlobStore, seed map[string]*entity.Portfolio) *PortfolioKV {
	if seed == nil {
		seed = map[string]*entity.Portfolio{}
	}
	return &PortfolioKV{
		store:      store,
		seed:       seed,
		portfolios: map[string]*entity.Portfolio{},
	}
}

// Load merges the stored portfolios over the bundled seed. Stored entries
// win on conflicting user ids; a missing blob means first boot.
func (r *PortfolioKV) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := map[string]*entity.Portfolio{}
	for id, p := range r.seed {
		merged[id] = p.Clone()
	}

	data, err := r.store.Get(ctx, portfoliosKey)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("failed to load portfolios: %w", err)
	}
	if err == nil {
		var stored map[string]*entity.Portfolio
		if err := json.Unmarshal(data, &stored); err != nil {
			return fmt.Errorf("failed to parse stored portfolios: %w", err)
		}
		for id, p := range stored {
			merged[id] = p
		}
	}

	r.portfolios = merged
	return nil
}

// FindByID returns a deep copy of the user's portfolio, or
// usecase.ErrPortfolioNotFound.
func (r *PortfolioKV) FindByID(ctx context.Context, userID string) (*entity.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.portfolios[userID]
	if !ok {
		return nil, usecase.ErrPortfolioNotFound
	}
	return p.Clone(), nil
}

// All returns deep copies of every portfolio, ordered by user id so sweeps
// are deterministic.
func (r *PortfolioKV) All(ctx context.Context) ([]*entity.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.portfolios))
	for id := range r.portfolios {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*entity.Portfolio, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.portfolios[id].Clone())
	}
	return out, nil
}

// Save stores the portfolio and re-serializes the whole map.
func (r *PortfolioKV) Save(ctx context.Context, p *entity.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, hadPrev := r.portfolios[p.UserID]
	r.portfolios[p.UserID] = p.Clone()

	if err := r.persist(ctx); err != nil {
		if hadPrev {
			r.portfolios[p.UserID] = prev
		} else {
			delete(r.portfolios, p.UserID)
		}
		return err
	}
	return nil
}

// Reset drops every stored portfolio and returns to the seed state.
func (r *PortfolioKV) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(ctx, portfoliosKey); err != nil {
		return fmt.Errorf("failed to remove portfolios: %w", err)
	}
	r.portfolios = map[string]*entity.Portfolio{}
	for id, p := range r.seed {
		r.portfolios[id] = p.Clone()
	}
	return nil
}

// persist writes the full map blob. Callers must hold the lock.
func (r *PortfolioKV) persist(ctx context.Context) error {
	data, err := json.Marshal(r.portfolios)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolios: %w", err)
	}
	if err := r.store.Set(ctx, portfoliosKey, data); err != nil {
		return fmt.Errorf("failed to save portfolios: %w", err)
	}
	return nil
}
