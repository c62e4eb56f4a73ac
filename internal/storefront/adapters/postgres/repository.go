package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/ports"
)

// Repository reads the catalog from Postgres. The table is seeded by
// migrations and treated as read-only by the storefront.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const catalogColumns = `id, name, unit_price_cents, unit_label, category, category_display, prep_fee_cents, prep_allowed`

func (r *Repository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM catalog_items
		ORDER BY position
	`, catalogColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.CatalogItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM catalog_items
		WHERE category = $1
		ORDER BY position
	`, catalogColumns)

	rows, err := r.pool.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("query catalog by category: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM catalog_items
		WHERE id = $1
	`, catalogColumns)

	var item domain.CatalogItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.UnitPriceCents,
		&item.UnitLabel,
		&item.Category,
		&item.CategoryDisplay,
		&item.PrepFeeCents,
		&item.PrepAllowed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("select catalog item: %w", err)
	}

	return &item, nil
}

func scanItems(rows pgx.Rows) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.UnitPriceCents,
			&item.UnitLabel,
			&item.Category,
			&item.CategoryDisplay,
			&item.PrepFeeCents,
			&item.PrepAllowed,
		); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog items: %w", err)
	}

	return items, nil
}
