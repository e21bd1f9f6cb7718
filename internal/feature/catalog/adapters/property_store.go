// Package adapters provides the repository implementations for the catalog
// feature.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"estate_backend/internal/feature/catalog/domain/entity"
	"estate_backend/internal/feature/catalog/usecase"
	"estate_backend/internal/platform/kv"
)

// dynamicPropertiesKey is the blob under which the runtime-created overlay
// is persisted. The static seed list is never written to storage.
const dynamicPropertiesKey = "properties:dynamic"

// BlobStore abstracts the key-value blob storage the catalog persists into.
// Following Go convention: interfaces are defined by the consumer (adapters),
// not the provider (platform/kv).
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// PropertyStore holds the combined catalog: the immutable seed list plus a
// dynamic overlay persisted as one JSON blob. The overlay is re-serialized
// in full after every mutation; dynamic entries are concatenated after
// static ones and never merged by id.
type PropertyStore struct {
	mu      sync.RWMutex
	store   BlobStore
	static  []entity.Property
	dynamic []entity.Property
}

var _ usecase.PropertyRepository = (*PropertyStore)(nil)

// NewPropertyStore creates a PropertyStore over the given blob store and
// static seed list.
func NewPropertyStore(store BlobStore, static []entity.Property) *PropertyStore {
	return &PropertyStore{
		store:   store,
		static:  append([]entity.Property(nil), static...),
		dynamic: []entity.Property{},
	}
}

// Load reads the dynamic overlay from storage. A missing blob leaves the
// overlay empty; that is the first-boot state, not an error.
func (s *PropertyStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, dynamicPropertiesKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			s.dynamic = []entity.Property{}
			return nil
		}
		return fmt.Errorf("failed to load dynamic properties: %w", err)
	}

	var dynamic []entity.Property
	if err := json.Unmarshal(data, &dynamic); err != nil {
		return fmt.Errorf("failed to parse dynamic properties: %w", err)
	}
	s.dynamic = dynamic
	return nil
}

// saveDynamic re-serializes the whole overlay. Callers must hold the lock.
func (s *PropertyStore) saveDynamic(ctx context.Context) error {
	data, err := json.Marshal(s.dynamic)
	if err != nil {
		return fmt.Errorf("failed to marshal dynamic properties: %w", err)
	}
	if err := s.store.Set(ctx, dynamicPropertiesKey, data); err != nil {
		return fmt.Errorf("failed to save dynamic properties: %w", err)
	}
	return nil
}

// ListAll returns the combined catalog, static entries first.
func (s *PropertyStore) ListAll(ctx context.Context) ([]entity.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Property, 0, len(s.static)+len(s.dynamic))
	out = append(out, s.static...)
	out = append(out, s.dynamic...)
	return out, nil
}

// GetByID returns the property with the given id from either list.
func (s *PropertyStore) GetByID(ctx context.Context, id string) (entity.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, _ := s.find(id); p != nil {
		return *p, nil
	}
	return entity.Property{}, usecase.ErrPropertyNotFound
}

// Classify reports whether the id belongs to a static or dynamic property.
func (s *PropertyStore) Classify(ctx context.Context, id string) (entity.Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, kind := s.find(id)
	if kind == "" {
		return "", usecase.ErrPropertyNotFound
	}
	return kind, nil
}

// Create appends a new dynamic property, assigning it a fresh id.
func (s *PropertyStore) Create(ctx context.Context, p entity.Property) (entity.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = "prop-" + uuid.NewString()
	s.dynamic = append(s.dynamic, p)
	if err := s.saveDynamic(ctx); err != nil {
		s.dynamic = s.dynamic[:len(s.dynamic)-1]
		return entity.Property{}, err
	}
	return p, nil
}

// Update replaces the fields of a dynamic property. Static ids are rejected
// before anything reaches storage; the id itself never changes.
func (s *PropertyStore) Update(ctx context.Context, id string, p entity.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStatic(id) {
		return usecase.ErrStaticProperty
	}
	for i := range s.dynamic {
		if s.dynamic[i].ID == id {
			p.ID = id
			prev := s.dynamic[i]
			s.dynamic[i] = p
			if err := s.saveDynamic(ctx); err != nil {
				s.dynamic[i] = prev
				return err
			}
			return nil
		}
	}
	return usecase.ErrPropertyNotFound
}

// Delete removes a dynamic property. Static ids are rejected.
func (s *PropertyStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStatic(id) {
		return usecase.ErrStaticProperty
	}
	for i := range s.dynamic {
		if s.dynamic[i].ID == id {
			removed := s.dynamic[i]
			s.dynamic = append(s.dynamic[:i], s.dynamic[i+1:]...)
			if err := s.saveDynamic(ctx); err != nil {
				s.dynamic = append(s.dynamic, removed)
				return err
			}
			return nil
		}
	}
	return usecase.ErrPropertyNotFound
}

// ApplyValueDelta multiplies every property's current value by
// (1 + deltaPct/100) and persists the affected overlay. Market movement
// bypasses the static/dynamic mutability rule, which only guards admin
// edits; static value changes live in memory until the next restart.
func (s *PropertyStore) ApplyValueDelta(ctx context.Context, deltaPct float64) ([]entity.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	factor := 1 + deltaPct/100
	for i := range s.static {
		s.static[i].CurrentValueMMK *= factor
	}
	for i := range s.dynamic {
		s.dynamic[i].CurrentValueMMK *= factor
	}
	if len(s.dynamic) > 0 {
		if err := s.saveDynamic(ctx); err != nil {
			return nil, err
		}
	}

	out := make([]entity.Property, 0, len(s.static)+len(s.dynamic))
	out = append(out, s.static...)
	out = append(out, s.dynamic...)
	return out, nil
}

// Reset drops the dynamic overlay from storage and memory, restoring the
// catalog to the bundled seed state.
func (s *PropertyStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, dynamicPropertiesKey); err != nil {
		return fmt.Errorf("failed to remove dynamic properties: %w", err)
	}
	s.dynamic = []entity.Property{}
	return nil
}

// find locates a property and its kind. Callers must hold the lock.
func (s *PropertyStore) find(id string) (*entity.Property, entity.Kind) {
	for i := range s.static {
		if s.static[i].ID == id {
			return &s.static[i], entity.KindStatic
		}
	}
	for i := range s.dynamic {
		if s.dynamic[i].ID == id {
			return &s.dynamic[i], entity.KindDynamic
		}
	}
	return nil, ""
}

// isStatic reports whether the id is present in the bundled seed list.
// Callers must hold the lock.
func (s *PropertyStore) isStatic(id string) bool {
	for i := range s.static {
		if s.static[i].ID == id {
			return true
		}
	}
	return false
}
