package ports

import (
	"context"
	"errors"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
)

// CatalogRepository exposes read access to the immutable product catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*domain.CatalogItem, error)
}

var (
	// ErrNotFound is returned when the requested catalog item does not exist.
	ErrNotFound = errors.New("catalog item not found")
)
