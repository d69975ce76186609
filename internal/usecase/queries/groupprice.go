package queries

import (
	"context"

	"engros-ordering/internal/pkg/errs"
)

type GroupPriceQueries interface {
	// List returns every offer-group override, the baseline the admin
	// override editor diffs its draft buffer against.
	List(ctx context.Context) ([]GroupPriceView, error)
}

type groupPriceQueriesImpl struct {
	prices GroupPriceReadStore
}

func NewGroupPriceQueries(prices GroupPriceReadStore) GroupPriceQueries {
	return &groupPriceQueriesImpl{prices: prices}
}

func (q *groupPriceQueriesImpl) List(ctx context.Context) ([]GroupPriceView, error) {
	views, err := q.prices.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list group prices")
	}
	return views, nil
}
