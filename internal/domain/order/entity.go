package order

import (
	"errors"
	"time"

	"engros-ordering/internal/domain/cart"
	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cannot place an order from an empty cart")
	ErrProductInactive = errors.New("cart references an inactive product")
)

// Line is a frozen pricing snapshot for one order line. Values are
// structurally copied from the resolved quote at placement time and
// never recomputed, whatever happens to the product or the discount
// configuration afterwards.
type Line struct {
	ProductID          uuid.UUID
	ProductName        string
	Unit               string
	Quantity           int32
	PriceCents         int64
	OriginalPriceCents int64
	DiscountType       string
	DiscountLabel      string
	DiscountPercent    int
	TotalCents         int64
	SavingsCents       int64
}

// CustomerSnapshot freezes who ordered, as they existed at checkout.
type CustomerSnapshot struct {
	CustomerID      uuid.UUID
	CompanyName     string
	ContactName     string
	Email           string
	Phone           string
	GroupName       string
	GroupPercentOff float64
}

type DeliveryInfo struct {
	Address string
	City    string
	Zip     string
	Note    string
}

type HistoryEntry struct {
	Status Status
	Note   *string
	At     time.Time
}

type Order struct {
	id          uuid.UUID
	orderNumber int64
	customer    CustomerSnapshot
	delivery    DeliveryInfo
	lines       []Line
	status      Status
	history     []HistoryEntry
	totals      cart.Totals
	placedAt    time.Time
}

// New freezes a priced cart into an order. Every referenced product
// must still be active; one inactive product aborts the whole order so
// a partial commit can never happen.
func New(
	customer CustomerSnapshot,
	delivery DeliveryInfo,
	lines []cart.PricedLine,
	inactive []uuid.UUID,
	orderNumber int64,
	now time.Time,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if len(inactive) > 0 {
		return nil, ErrProductInactive
	}

	frozen := make([]Line, len(lines))
	for i, l := range lines {
		frozen[i] = freezeLine(l)
	}

	o := &Order{
		id:          uuid.New(),
		orderNumber: orderNumber,
		customer:    customer,
		delivery:    delivery,
		lines:       frozen,
		status:      StatusPlaced,
		totals:      cart.Summarize(lines),
		placedAt:    now,
	}
	o.history = append(o.history, HistoryEntry{Status: StatusPlaced, At: now})
	return o, nil
}

func freezeLine(l cart.PricedLine) Line {
	return Line{
		ProductID:          l.ProductID,
		ProductName:        l.ProductName,
		Unit:               l.Unit,
		Quantity:           l.Quantity,
		PriceCents:         l.Quote.PriceCents,
		OriginalPriceCents: l.Quote.OriginalPriceCents,
		DiscountType:       string(l.Quote.DiscountType),
		DiscountLabel:      l.Quote.DiscountLabel,
		DiscountPercent:    l.Quote.DiscountPercent,
		TotalCents:         l.TotalCents(),
		SavingsCents:       l.SavingsCents(),
	}
}

func Reconstruct(
	id uuid.UUID,
	orderNumber int64,
	customer CustomerSnapshot,
	delivery DeliveryInfo,
	lines []Line,
	status Status,
	history []HistoryEntry,
	totals cart.Totals,
	placedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		orderNumber: orderNumber,
		customer:    customer,
		delivery:    delivery,
		lines:       lines,
		status:      status,
		history:     history,
		totals:      totals,
		placedAt:    placedAt,
	}
}

// Transition validates the requested status change against the
// transition table and appends to the history log. The log is
// append-only; entries are never edited or removed.
func (o *Order) Transition(next Status, note *string, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.status = next
	o.history = append(o.history, HistoryEntry{Status: next, Note: note, At: now})
	return nil
}

func (o *Order) ID() uuid.UUID              { return o.id }
func (o *Order) OrderNumber() int64         { return o.orderNumber }
func (o *Order) Customer() CustomerSnapshot { return o.customer }
func (o *Order) Delivery() DeliveryInfo     { return o.delivery }
func (o *Order) Lines() []Line              { return o.lines }
func (o *Order) Status() Status             { return o.status }
func (o *Order) History() []HistoryEntry    { return o.history }
func (o *Order) Totals() cart.Totals        { return o.totals }
func (o *Order) PlacedAt() time.Time        { return o.placedAt }

// InactiveProducts filters the given product specs down to the IDs
// that may no longer be ordered.
func InactiveProducts(products []pricing.ProductSpec) []uuid.UUID {
	var ids []uuid.UUID
	for _, p := range products {
		if !p.Active {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
