package repository

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UniqueOfferRepository struct{}

func NewUniqueOfferRepository() *UniqueOfferRepository {
	return &UniqueOfferRepository{}
}

// DeactivateActive retires every live offer for the pair. Rows are
// kept for audit; only the active flag flips.
func (r *UniqueOfferRepository) DeactivateActive(ctx context.Context, dbtx db.DBTX, customerID, productID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
UPDATE unique_offers
SET active = FALSE
WHERE customer_id = $1 AND product_id = $2 AND active`,
		customerID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate unique offers", err)
	}
	return nil
}

func (r *UniqueOfferRepository) Create(ctx context.Context, dbtx db.DBTX, offer pricing.UniqueOfferSpec) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO unique_offers (customer_id, product_id, price_cents, valid_from, valid_to, unlimited, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
		offer.CustomerID, offer.ProductID, offer.PriceCents,
		pgconv.TimePtrToPgtype(offer.ValidFrom), pgconv.TimePtrToPgtype(offer.ValidTo),
		offer.Unlimited, offer.Active, pgconv.TimeToPgtype(offer.CreatedAt),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create unique offer", err)
	}
	return id, nil
}
