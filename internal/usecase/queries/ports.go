package queries

import (
	"context"

	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
)

// Read-side storage ports, implemented by internal/infra/readstore.

type CartRecord struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Lines      []CartLineRecord
}

type CartLineRecord struct {
	ProductID      uuid.UUID
	ProductName    string
	Unit           string
	BasePriceCents int64
	ProductActive  bool
	Quantity       int32
}

type CustomerRecord struct {
	ID              uuid.UUID
	Email           string
	CompanyName     string
	ContactName     string
	Phone           string
	Role            string
	GroupID         uuid.UUID
	GroupName       string
	GroupColor      string
	GroupPercentOff float64
	GroupActive     bool
}

func (c *CustomerRecord) PricingSpec() *pricing.CustomerSpec {
	return &pricing.CustomerSpec{
		ID: c.ID,
		Group: pricing.GroupSpec{
			ID:         c.GroupID,
			Name:       c.GroupName,
			PercentOff: c.GroupPercentOff,
			Active:     c.GroupActive,
		},
	}
}

type CartReadStore interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*CartRecord, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerRecord, error)
}

type ProductReadStore interface {
	ListActive(ctx context.Context) ([]pricing.ProductSpec, error)
	ListActiveDetailed(ctx context.Context) ([]ProductDetail, error)
}

type ProductDetail struct {
	Spec     pricing.ProductSpec
	Unit     string
	Category string
}

// PricingReadStore loads the discount configuration for a set of
// products as of one read: active unique offers for the customer,
// flash sales, and the group's fixed-price overrides.
type PricingReadStore interface {
	OffersFor(ctx context.Context, customerID *uuid.UUID, groupID *uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]pricing.Offers, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderListItem, error)
}

type GroupPriceReadStore interface {
	List(ctx context.Context) ([]GroupPriceView, error)
}
