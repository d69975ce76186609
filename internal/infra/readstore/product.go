package readstore

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductRow struct {
	ID             uuid.UUID
	Name           string
	Unit           string
	Category       string
	BasePriceCents int64
	Active         bool
}

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (s *ProductReadStore) ListActive(ctx context.Context) ([]pricing.ProductSpec, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, name, base_price_cents, active
FROM products
WHERE active
ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active products", err)
	}
	defer rows.Close()

	var specs []pricing.ProductSpec
	for rows.Next() {
		var p pricing.ProductSpec
		if err := rows.Scan(&p.ID, &p.Name, &p.BasePriceCents, &p.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		specs = append(specs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return specs, nil
}

func (s *ProductReadStore) ListActiveDetailed(ctx context.Context) ([]queries.ProductDetail, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, name, unit, category, base_price_cents, active
FROM products
WHERE active
ORDER BY category, name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var details []queries.ProductDetail
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Unit, &r.Category, &r.BasePriceCents, &r.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		details = append(details, queries.ProductDetail{
			Spec: pricing.ProductSpec{
				ID:             r.ID,
				Name:           r.Name,
				BasePriceCents: r.BasePriceCents,
				Active:         r.Active,
			},
			Unit:     r.Unit,
			Category: r.Category,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return details, nil
}

// FindByIDs returns the requested products in id order; missing ids
// simply do not appear, the caller decides whether that is an error.
func (s *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
SELECT id, name, unit, category, base_price_cents, active
FROM products
WHERE id = ANY($1)
ORDER BY id`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by ids", err)
	}
	defer rows.Close()

	var result []ProductRow
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Unit, &r.Category, &r.BasePriceCents, &r.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return result, nil
}
