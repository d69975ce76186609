package readstore

import (
	"context"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

// FindByCustomer loads the cart with its lines joined to the current
// product rows. Only references and quantities are stored; price
// resolution happens in the caller.
func (s *CartReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*queries.CartRecord, error) {
	var record queries.CartRecord
	err := s.db.QueryRow(ctx,
		`SELECT id, customer_id FROM carts WHERE customer_id = $1`,
		customerID,
	).Scan(&record.ID, &record.CustomerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	rows, err := s.db.Query(ctx, `
SELECT i.product_id, p.name, p.unit, p.base_price_cents, p.active, i.quantity
FROM cart_items i
JOIN products p ON p.id = i.product_id
WHERE i.cart_id = $1
ORDER BY p.name, i.product_id`, record.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line queries.CartLineRecord
		if err := rows.Scan(
			&line.ProductID, &line.ProductName, &line.Unit,
			&line.BasePriceCents, &line.ProductActive, &line.Quantity,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		record.Lines = append(record.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart items", err)
	}
	return &record, nil
}
