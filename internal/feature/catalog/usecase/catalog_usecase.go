package usecase

import (
	"context"
	"fmt"

	"estate_backend/internal/feature/catalog/domain/entity"
)

// PropertyRepository abstracts the persistence layer for the property
// catalog. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type PropertyRepository interface {
	// ListAll returns the combined catalog, static entries first.
	ListAll(ctx context.Context) ([]entity.Property, error)

	// GetByID returns the property with the given id, or ErrPropertyNotFound.
	GetByID(ctx context.Context, id string) (entity.Property, error)

	// Classify reports whether the id names a static or dynamic property.
	Classify(ctx context.Context, id string) (entity.Kind, error)

	// Create appends a new dynamic property and returns it with its id set.
	Create(ctx context.Context, p entity.Property) (entity.Property, error)

	// Update replaces a dynamic property. Static ids yield ErrStaticProperty.
	Update(ctx context.Context, id string, p entity.Property) error

	// Delete removes a dynamic property. Static ids yield ErrStaticProperty.
	Delete(ctx context.Context, id string) error
}

// CatalogUsecase provides business logic for catalog operations.
type CatalogUsecase struct {
	repo PropertyRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(r PropertyRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// validateProperty checks the fields an admin may submit.
func validateProperty(p entity.Property) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProperty)
	}
	if p.CurrentValueMMK <= 0 {
		return fmt.Errorf("%w: currentValueMMK must be positive", ErrInvalidProperty)
	}
	if p.SharePriceMMK <= 0 {
		return fmt.Errorf("%w: sharePriceMMK must be positive", ErrInvalidProperty)
	}
	if p.TotalShares < 0 || p.AvailableShares < 0 {
		return fmt.Errorf("%w: share counts must not be negative", ErrInvalidProperty)
	}
	return nil
}

// ListProperties returns the whole catalog.
func (u *CatalogUsecase) ListProperties(ctx context.Context) ([]entity.Property, error) {
	return u.repo.ListAll(ctx)
}

// GetProperty returns a single property by id.
func (u *CatalogUsecase) GetProperty(ctx context.Context, id string) (entity.Property, error) {
	return u.repo.GetByID(ctx, id)
}

// ClassifyProperty reports whether a property is static or dynamic.
func (u *CatalogUsecase) ClassifyProperty(ctx context.Context, id string) (entity.Kind, error) {
	return u.repo.Classify(ctx, id)
}

// CreateProperty validates and stores a new dynamic property.
func (u *CatalogUsecase) CreateProperty(ctx context.Context, p entity.Property) (entity.Property, error) {
	if err := validateProperty(p); err != nil {
		return entity.Property{}, err
	}
	return u.repo.Create(ctx, p)
}

// UpdateProperty validates and replaces an existing dynamic property.
func (u *CatalogUsecase) UpdateProperty(ctx context.Context, id string, p entity.Property) error {
	if err := validateProperty(p); err != nil {
		return err
	}
	return u.repo.Update(ctx, id, p)
}

// DeleteProperty removes a dynamic property.
func (u *CatalogUsecase) DeleteProperty(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
