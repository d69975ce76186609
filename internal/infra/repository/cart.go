package repository

import (
	"context"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// EnsureCart returns the customer's cart id, creating the row on
// first use. Concurrent first adds race on the unique customer
// constraint, so the insert is idempotent.
func (r *CartRepository) EnsureCart(ctx context.Context, dbtx db.DBTX, customerID uuid.UUID) (uuid.UUID, error) {
	var cartID uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO carts (customer_id)
VALUES ($1)
ON CONFLICT (customer_id) DO UPDATE SET updated_at = now()
RETURNING id`, customerID).Scan(&cartID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to ensure cart", err)
	}
	return cartID, nil
}

func (r *CartRepository) UpsertItem(ctx context.Context, dbtx db.DBTX, cartID, productID uuid.UUID, quantity int32) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		cartID, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, dbtx db.DBTX, cartID, productID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	return nil
}

func (r *CartRepository) ClearItems(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
