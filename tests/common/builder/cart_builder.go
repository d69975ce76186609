//go:build unit || e2e

package builder

import (
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewBuilder struct {
	items []queries.CartItemView
}

func NewCartViewBuilder() *CartViewBuilder {
	return &CartViewBuilder{}
}

func (b *CartViewBuilder) WithItem(productID uuid.UUID, quantity int32, priceCents, originalCents int64) *CartViewBuilder {
	b.items = append(b.items, queries.CartItemView{
		ProductID:              productID,
		ProductName:            "Økologiske æbler",
		Unit:                   "kasse",
		Quantity:               quantity,
		PriceCents:             priceCents,
		OriginalPriceCents:     originalCents,
		DiscountType:           "none",
		ItemTotalCents:         priceCents * int64(quantity),
		ItemOriginalTotalCents: originalCents * int64(quantity),
	})
	return b
}

func (b *CartViewBuilder) Build() *queries.CartView {
	view := &queries.CartView{Items: b.items}
	if view.Items == nil {
		view.Items = []queries.CartItemView{}
	}
	for _, it := range view.Items {
		view.TotalItems += it.Quantity
		view.TotalPriceCents += it.ItemTotalCents
		view.TotalOriginalPriceCents += it.ItemOriginalTotalCents
		savings := it.ItemOriginalTotalCents - it.ItemTotalCents
		if savings > 0 {
			view.TotalSavingsCents += savings
		}
	}
	return view
}
