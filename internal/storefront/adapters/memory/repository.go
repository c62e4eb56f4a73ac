package memory

import (
	"context"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/ports"
)

// Repository serves the catalog from process memory. The catalog is immutable
// reference data, so the repository takes its items once at construction and
// never changes them.
type Repository struct {
	items []domain.CatalogItem
	byID  map[string]domain.CatalogItem
}

// NewRepository constructs a repository over the given items, preserving order.
func NewRepository(items []domain.CatalogItem) *Repository {
	byID := make(map[string]domain.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Repository{items: items, byID: byID}
}

// NewSeededRepository constructs a repository over the built-in catalog.
func NewSeededRepository() *Repository {
	return NewRepository(seedCatalog())
}

// List returns every catalog item in display order.
func (r *Repository) List(_ context.Context) ([]domain.CatalogItem, error) {
	items := make([]domain.CatalogItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// ListByCategory returns the items in one category, in display order.
func (r *Repository) ListByCategory(_ context.Context, category domain.Category) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetByID fetches a single item by identifier.
func (r *Repository) GetByID(_ context.Context, id string) (*domain.CatalogItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &item, nil
}
