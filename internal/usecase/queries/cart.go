package queries

import (
	"context"

	"engros-ordering/internal/domain/cart"
	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CartQueries interface {
	// View recomputes every line through the price resolver using the
	// configuration and clock reading of this call. Nothing is cached:
	// a promotion starting or expiring between two views must show up.
	View(ctx context.Context, customerID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	carts     CartReadStore
	customers CustomerReadStore
	offers    PricingReadStore
	clock     clock.Clock
}

func NewCartQueries(carts CartReadStore, customers CustomerReadStore, offers PricingReadStore, clk clock.Clock) CartQueries {
	return &cartQueriesImpl{
		carts:     carts,
		customers: customers,
		offers:    offers,
		clock:     clk,
	}
}

func (q *cartQueriesImpl) View(ctx context.Context, customerID uuid.UUID) (*CartView, error) {
	cust, err := q.customers.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to load customer")
	}

	record, err := q.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return emptyCartView(), nil
		}
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if len(record.Lines) == 0 {
		return emptyCartView(), nil
	}

	productIDs := make([]uuid.UUID, len(record.Lines))
	for i, l := range record.Lines {
		productIDs[i] = l.ProductID
	}

	groupID := cust.GroupID
	offersByProduct, err := q.offers.OffersFor(ctx, &customerID, &groupID, productIDs)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load offers")
	}

	now := q.clock.Now()
	spec := cust.PricingSpec()

	lines := make([]cart.PricedLine, len(record.Lines))
	for i, l := range record.Lines {
		product := pricing.ProductSpec{
			ID:             l.ProductID,
			Name:           l.ProductName,
			BasePriceCents: l.BasePriceCents,
			Active:         l.ProductActive,
		}
		lines[i] = cart.PricedLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			Quote:       pricing.Resolve(product, spec, offersByProduct[l.ProductID], now),
		}
	}

	return buildCartView(lines), nil
}

func buildCartView(lines []cart.PricedLine) *CartView {
	items := make([]CartItemView, len(lines))
	for i, l := range lines {
		items[i] = CartItemView{
			ProductID:              l.ProductID,
			ProductName:            l.ProductName,
			Unit:                   l.Unit,
			Quantity:               l.Quantity,
			PriceCents:             l.Quote.PriceCents,
			OriginalPriceCents:     l.Quote.OriginalPriceCents,
			DiscountType:           string(l.Quote.DiscountType),
			DiscountLabel:          l.Quote.DiscountLabel,
			DiscountPercent:        l.Quote.DiscountPercent,
			Strikethrough:          l.Quote.Strikethrough,
			ItemTotalCents:         l.TotalCents(),
			ItemOriginalTotalCents: l.OriginalTotalCents(),
			ItemSavingsCents:       l.SavingsCents(),
		}
	}

	totals := cart.Summarize(lines)
	return &CartView{
		Items:                   items,
		TotalItems:              totals.TotalItems,
		TotalPriceCents:         totals.TotalCents,
		TotalOriginalPriceCents: totals.OriginalTotalCents,
		TotalSavingsCents:       totals.SavingsCents,
	}
}

func emptyCartView() *CartView {
	return &CartView{Items: []CartItemView{}}
}
