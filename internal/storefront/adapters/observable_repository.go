package adapters

import (
	"context"
	"time"

	"github.com/seasideseafood/storefront/internal/database"
	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/ports"
	"github.com/seasideseafood/storefront/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObservableRepository wraps a catalog repository with spans and query metrics.
type ObservableRepository struct {
	repo    ports.CatalogRepository
	metrics *database.Metrics
}

func NewObservableRepository(repo ports.CatalogRepository, metrics *database.Metrics) *ObservableRepository {
	return &ObservableRepository{
		repo:    repo,
		metrics: metrics,
	}
}

func (r *ObservableRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "CatalogRepository.List")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "list"),
	)

	start := time.Now()
	items, err := r.repo.List(ctx)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "list_catalog", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("result.count", len(items)))
	telemetry.SetSpanSuccess(span)
	return items, nil
}

func (r *ObservableRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.CatalogItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "CatalogRepository.ListByCategory")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "list_by_category"),
		attribute.String("catalog.category", string(category)),
	)

	start := time.Now()
	items, err := r.repo.ListByCategory(ctx, category)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "list_catalog_by_category", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("result.count", len(items)))
	telemetry.SetSpanSuccess(span)
	return items, nil
}

func (r *ObservableRepository) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "CatalogRepository.GetByID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "get_by_id"),
		attribute.String("catalog.item_id", id),
	)

	start := time.Now()
	item, err := r.repo.GetByID(ctx, id)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "get_catalog_item", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.SetSpanSuccess(span)
	return item, nil
}
