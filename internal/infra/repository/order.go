package repository

import (
	"context"
	"time"

	"engros-ordering/internal/domain/order"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) NextOrderNumber(ctx context.Context, dbtx db.DBTX) (int64, error) {
	var number int64
	if err := dbtx.QueryRow(ctx, `SELECT nextval('order_number_seq')`).Scan(&number); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate order number", err)
	}
	return number, nil
}

// Create persists the frozen order: header with totals and customer
// snapshot, one row per line, and the initial history entry.
func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error) {
	cust := o.Customer()
	delivery := o.Delivery()
	totals := o.Totals()

	_, err := dbtx.Exec(ctx, `
INSERT INTO orders (
    id, order_number, customer_id, status,
    company_name, contact_name, email, phone, group_name, group_percent_off,
    delivery_address, delivery_city, delivery_zip, delivery_note,
    total_items, total_cents, original_total_cents, savings_cents, placed_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8, $9, $10,
    $11, $12, $13, $14,
    $15, $16, $17, $18, $19
)`,
		o.ID(), o.OrderNumber(), cust.CustomerID, o.Status().String(),
		cust.CompanyName, cust.ContactName, cust.Email, cust.Phone,
		cust.GroupName, cust.GroupPercentOff,
		delivery.Address, delivery.City, delivery.Zip, delivery.Note,
		totals.TotalItems, totals.TotalCents, totals.OriginalTotalCents, totals.SavingsCents,
		pgconv.TimeToPgtype(o.PlacedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for i, line := range o.Lines() {
		_, err := dbtx.Exec(ctx, `
INSERT INTO order_items (
    order_id, line_no, product_id, product_name, unit, quantity,
    price_cents, original_price_cents,
    discount_type, discount_label, discount_percent,
    total_cents, savings_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			o.ID(), i+1, line.ProductID, line.ProductName, line.Unit, line.Quantity,
			line.PriceCents, line.OriginalPriceCents,
			line.DiscountType, line.DiscountLabel, line.DiscountPercent,
			line.TotalCents, line.SavingsCents,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	for _, entry := range o.History() {
		if err := r.AppendHistory(ctx, dbtx, o.ID(), entry.Status, entry.Note, entry.At); err != nil {
			return uuid.Nil, err
		}
	}

	return o.ID(), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status order.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		orderID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) AppendHistory(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status order.Status, note *string, at time.Time) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO order_status_history (order_id, status, note, created_at)
VALUES ($1, $2, $3, $4)`,
		orderID, status.String(), pgconv.StringPtrToPgtype(note), pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to append order history", err)
	}
	return nil
}
