package readstore

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// PricingReadStore assembles the discount configuration the resolver
// consumes. Rows are filtered on the active flag only; validity
// windows are evaluated by the resolver against its own clock reading
// so a view and a placement can price at different instants.
type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(dbtx db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: dbtx}
}

func (s *PricingReadStore) OffersFor(
	ctx context.Context,
	customerID *uuid.UUID,
	groupID *uuid.UUID,
	productIDs []uuid.UUID,
) (map[uuid.UUID]pricing.Offers, error) {
	offers := make(map[uuid.UUID]pricing.Offers, len(productIDs))
	if len(productIDs) == 0 {
		return offers, nil
	}

	if customerID != nil {
		if err := s.loadUniqueOffers(ctx, *customerID, productIDs, offers); err != nil {
			return nil, err
		}
	}
	if err := s.loadFlashSales(ctx, productIDs, offers); err != nil {
		return nil, err
	}
	if groupID != nil && *groupID != uuid.Nil {
		if err := s.loadGroupPrices(ctx, *groupID, productIDs, offers); err != nil {
			return nil, err
		}
	}
	return offers, nil
}

func (s *PricingReadStore) loadUniqueOffers(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID, offers map[uuid.UUID]pricing.Offers) error {
	rows, err := s.db.Query(ctx, `
SELECT id, customer_id, product_id, price_cents, valid_from, valid_to, unlimited, active, created_at
FROM unique_offers
WHERE customer_id = $1 AND product_id = ANY($2) AND active
ORDER BY created_at`, customerID, productIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to load unique offers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			spec      pricing.UniqueOfferSpec
			validFrom pgtype.Timestamptz
			validTo   pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&spec.ID, &spec.CustomerID, &spec.ProductID, &spec.PriceCents,
			&validFrom, &validTo, &spec.Unlimited, &spec.Active, &createdAt,
		); err != nil {
			return infra.WrapRepoErr("failed to scan unique offer", err)
		}
		spec.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
		spec.ValidTo = pgconv.TimePtrFromPgtype(validTo)
		spec.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		o := offers[spec.ProductID]
		o.UniqueOffers = append(o.UniqueOffers, spec)
		offers[spec.ProductID] = o
	}
	return rows.Err()
}

func (s *PricingReadStore) loadFlashSales(ctx context.Context, productIDs []uuid.UUID, offers map[uuid.UUID]pricing.Offers) error {
	rows, err := s.db.Query(ctx, `
SELECT id, product_id, price_cents, starts_at, ends_at, active
FROM flash_sales
WHERE product_id = ANY($1) AND active
ORDER BY starts_at`, productIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to load flash sales", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			spec     pricing.FlashSaleSpec
			startsAt pgtype.Timestamptz
			endsAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&spec.ID, &spec.ProductID, &spec.PriceCents, &startsAt, &endsAt, &spec.Active); err != nil {
			return infra.WrapRepoErr("failed to scan flash sale", err)
		}
		spec.StartsAt = pgconv.TimeFromPgtype(startsAt)
		spec.EndsAt = pgconv.TimeFromPgtype(endsAt)

		o := offers[spec.ProductID]
		o.FlashSales = append(o.FlashSales, spec)
		offers[spec.ProductID] = o
	}
	return rows.Err()
}

func (s *PricingReadStore) loadGroupPrices(ctx context.Context, groupID uuid.UUID, productIDs []uuid.UUID, offers map[uuid.UUID]pricing.Offers) error {
	rows, err := s.db.Query(ctx, `
SELECT product_id, price_cents
FROM group_prices
WHERE group_id = $1 AND product_id = ANY($2)`, groupID, productIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to load group prices", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID  uuid.UUID
			priceCents int64
		)
		if err := rows.Scan(&productID, &priceCents); err != nil {
			return infra.WrapRepoErr("failed to scan group price", err)
		}
		o := offers[productID]
		o.GroupPriceCents = &priceCents
		offers[productID] = o
	}
	return rows.Err()
}
