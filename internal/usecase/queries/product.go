package queries

import (
	"context"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductQueries interface {
	// List returns the active catalog priced for the given customer,
	// or at base prices when nobody is authenticated. Admin previews
	// consume the same resolved quotes as the storefront.
	List(ctx context.Context, customerID *uuid.UUID) ([]ProductView, error)
}

type productQueriesImpl struct {
	products  ProductReadStore
	customers CustomerReadStore
	offers    PricingReadStore
	clock     clock.Clock
}

func NewProductQueries(products ProductReadStore, customers CustomerReadStore, offers PricingReadStore, clk clock.Clock) ProductQueries {
	return &productQueriesImpl{
		products:  products,
		customers: customers,
		offers:    offers,
		clock:     clk,
	}
}

func (q *productQueriesImpl) List(ctx context.Context, customerID *uuid.UUID) ([]ProductView, error) {
	details, err := q.products.ListActiveDetailed(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}

	var spec *pricing.CustomerSpec
	var groupID *uuid.UUID
	if customerID != nil {
		cust, err := q.customers.FindByID(ctx, *customerID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Wrap(err, "failed to load customer")
			}
		} else {
			spec = cust.PricingSpec()
			groupID = &cust.GroupID
		}
	}

	productIDs := make([]uuid.UUID, len(details))
	for i, d := range details {
		productIDs[i] = d.Spec.ID
	}

	offersByProduct, err := q.offers.OffersFor(ctx, customerID, groupID, productIDs)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load offers")
	}

	now := q.clock.Now()
	views := make([]ProductView, len(details))
	for i, d := range details {
		quote := pricing.Resolve(d.Spec, spec, offersByProduct[d.Spec.ID], now)
		views[i] = ProductView{
			ID:                 d.Spec.ID,
			Name:               d.Spec.Name,
			Unit:               d.Unit,
			Category:           d.Category,
			PriceCents:         quote.PriceCents,
			OriginalPriceCents: quote.OriginalPriceCents,
			DiscountType:       string(quote.DiscountType),
			DiscountLabel:      quote.DiscountLabel,
			DiscountPercent:    quote.DiscountPercent,
			Strikethrough:      quote.Strikethrough,
		}
	}
	return views, nil
}
