package readstore

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupPriceReadStore struct {
	db db.DBTX
}

func NewGroupPriceReadStore(dbtx db.DBTX) *GroupPriceReadStore {
	return &GroupPriceReadStore{db: dbtx}
}

func (s *GroupPriceReadStore) List(ctx context.Context) ([]queries.GroupPriceView, error) {
	rows, err := s.db.Query(ctx, `
SELECT gp.product_id, p.name, gp.group_id, g.name, gp.price_cents
FROM group_prices gp
JOIN products p ON p.id = gp.product_id
JOIN discount_groups g ON g.id = gp.group_id
ORDER BY p.name, g.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list group prices", err)
	}
	defer rows.Close()

	var views []queries.GroupPriceView
	for rows.Next() {
		var v queries.GroupPriceView
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.GroupID, &v.GroupName, &v.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan group price", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read group prices", err)
	}
	return views, nil
}

// Baseline loads the stored overrides for the given cells so the
// editor can diff a draft batch against them.
func (s *GroupPriceReadStore) Baseline(ctx context.Context, keys []pricing.OverrideKey) ([]pricing.OverrideChange, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	productIDs := make([]uuid.UUID, len(keys))
	groupIDs := make([]uuid.UUID, len(keys))
	for i, k := range keys {
		productIDs[i] = k.ProductID
		groupIDs[i] = k.GroupID
	}

	rows, err := s.db.Query(ctx, `
SELECT product_id, group_id, price_cents
FROM group_prices
WHERE (product_id, group_id) IN (SELECT * FROM unnest($1::uuid[], $2::uuid[]))`,
		productIDs, groupIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load group price baseline", err)
	}
	defer rows.Close()

	var baseline []pricing.OverrideChange
	for rows.Next() {
		var ch pricing.OverrideChange
		if err := rows.Scan(&ch.ProductID, &ch.GroupID, &ch.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan group price baseline", err)
		}
		baseline = append(baseline, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read group price baseline", err)
	}
	return baseline, nil
}
