package readstore

import (
	"context"
	"time"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

// FindByID reads the frozen order exactly as it was written at
// placement. Nothing here joins back to products or discount tables.
func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view     queries.OrderView
		placedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
SELECT id, order_number, status,
       customer_id, company_name, contact_name, email, phone,
       group_name, group_percent_off,
       delivery_address, delivery_city, delivery_zip, delivery_note,
       total_items, total_cents, original_total_cents, savings_cents,
       placed_at
FROM orders
WHERE id = $1`, id).Scan(
		&view.ID, &view.OrderNumber, &view.Status,
		&view.Customer.CustomerID, &view.Customer.CompanyName, &view.Customer.ContactName,
		&view.Customer.Email, &view.Customer.Phone,
		&view.Customer.GroupName, &view.Customer.GroupPercentOff,
		&view.DeliveryAddress, &view.DeliveryCity, &view.DeliveryZip, &view.DeliveryNote,
		&view.TotalItems, &view.TotalCents, &view.OriginalTotalCents, &view.SavingsCents,
		&placedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	view.PlacedAt = pgconv.TimeFromPgtype(placedAt)

	if err := s.loadItems(ctx, &view); err != nil {
		return nil, err
	}
	if err := s.loadHistory(ctx, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *OrderReadStore) loadItems(ctx context.Context, view *queries.OrderView) error {
	rows, err := s.db.Query(ctx, `
SELECT product_id, product_name, unit, quantity,
       price_cents, original_price_cents,
       discount_type, discount_label, discount_percent,
       total_cents, savings_cents
FROM order_items
WHERE order_id = $1
ORDER BY line_no`, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(
			&item.ProductID, &item.ProductName, &item.Unit, &item.Quantity,
			&item.PriceCents, &item.OriginalPriceCents,
			&item.DiscountType, &item.DiscountLabel, &item.DiscountPercent,
			&item.TotalCents, &item.SavingsCents,
		); err != nil {
			return infra.WrapRepoErr("failed to scan order item", err)
		}
		view.Items = append(view.Items, item)
	}
	return rows.Err()
}

func (s *OrderReadStore) loadHistory(ctx context.Context, view *queries.OrderView) error {
	rows, err := s.db.Query(ctx, `
SELECT status, note, created_at
FROM order_status_history
WHERE order_id = $1
ORDER BY created_at, id`, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load order history", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry queries.OrderStatusView
			note  pgtype.Text
			at    pgtype.Timestamptz
		)
		if err := rows.Scan(&entry.Status, &note, &at); err != nil {
			return infra.WrapRepoErr("failed to scan history entry", err)
		}
		entry.Note = pgconv.StringPtrFromPgtype(note)
		entry.At = pgconv.TimeFromPgtype(at)
		view.History = append(view.History, entry)
	}
	return rows.Err()
}

// FindState reads just enough for a status transition check.
func (s *OrderReadStore) FindState(ctx context.Context, id uuid.UUID) (uuid.UUID, string, time.Time, error) {
	var (
		orderID  uuid.UUID
		status   string
		placedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, status, placed_at FROM orders WHERE id = $1`, id,
	).Scan(&orderID, &status, &placedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, "", time.Time{}, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return uuid.Nil, "", time.Time{}, infra.WrapRepoErr("failed to find order state", err)
	}
	return orderID, status, pgconv.TimeFromPgtype(placedAt), nil
}

func (s *OrderReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, order_number, status, total_items, total_cents, placed_at
FROM orders
WHERE customer_id = $1
ORDER BY placed_at DESC, id`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []queries.OrderListItem
	for rows.Next() {
		var (
			item     queries.OrderListItem
			placedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.OrderNumber, &item.Status, &item.TotalItems, &item.TotalCents, &placedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		item.PlacedAt = pgconv.TimeFromPgtype(placedAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}
	return items, nil
}
