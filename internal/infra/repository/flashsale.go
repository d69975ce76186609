package repository

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FlashSaleRepository struct{}

func NewFlashSaleRepository() *FlashSaleRepository {
	return &FlashSaleRepository{}
}

func (r *FlashSaleRepository) Create(ctx context.Context, dbtx db.DBTX, sale pricing.FlashSaleSpec) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO flash_sales (product_id, price_cents, starts_at, ends_at, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		sale.ProductID, sale.PriceCents,
		pgconv.TimeToPgtype(sale.StartsAt), pgconv.TimeToPgtype(sale.EndsAt),
		sale.Active,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create flash sale", err)
	}
	return id, nil
}

func (r *FlashSaleRepository) Deactivate(ctx context.Context, dbtx db.DBTX, saleID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE flash_sales SET active = FALSE WHERE id = $1`,
		saleID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate flash sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flash sale not found", nil, infra.KindNotFound)
	}
	return nil
}
