package cart

import (
	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
)

// PricedLine couples a cart line with the quote resolved for it at
// view time.
type PricedLine struct {
	ProductID   uuid.UUID
	ProductName string
	Unit        string
	Quantity    int32
	Quote       pricing.Quote
}

func (l PricedLine) TotalCents() int64 {
	return l.Quote.PriceCents * int64(l.Quantity)
}

func (l PricedLine) OriginalTotalCents() int64 {
	return l.Quote.OriginalPriceCents * int64(l.Quantity)
}

func (l PricedLine) SavingsCents() int64 {
	savings := l.OriginalTotalCents() - l.TotalCents()
	if savings < 0 {
		return 0
	}
	return savings
}

type Totals struct {
	TotalItems         int32
	TotalCents         int64
	OriginalTotalCents int64
	SavingsCents       int64
}

// Summarize rolls priced lines up into cart totals. Sums are exact in
// minor units; there is no floating-point drift to absorb.
func Summarize(lines []PricedLine) Totals {
	var t Totals
	for _, l := range lines {
		t.TotalItems += l.Quantity
		t.TotalCents += l.TotalCents()
		t.OriginalTotalCents += l.OriginalTotalCents()
		t.SavingsCents += l.SavingsCents()
	}
	return t
}
