package repository

import (
	"context"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"

	"github.com/google/uuid"
)

type GroupPriceRepository struct{}

func NewGroupPriceRepository() *GroupPriceRepository {
	return &GroupPriceRepository{}
}

func (r *GroupPriceRepository) Upsert(ctx context.Context, dbtx db.DBTX, productID, groupID uuid.UUID, priceCents int64) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO group_prices (product_id, group_id, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, group_id)
DO UPDATE SET price_cents = EXCLUDED.price_cents, updated_at = now()`,
		productID, groupID, priceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert group price", err)
	}
	return nil
}

// Delete is how a blank cell lands: the override row disappears and
// the group falls back to its percentage. Deleting an absent row is
// not an error.
func (r *GroupPriceRepository) Delete(ctx context.Context, dbtx db.DBTX, productID, groupID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`DELETE FROM group_prices WHERE product_id = $1 AND group_id = $2`,
		productID, groupID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete group price", err)
	}
	return nil
}
