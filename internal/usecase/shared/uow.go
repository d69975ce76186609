package shared

import (
	"context"
	"time"

	"engros-ordering/internal/domain/order"
	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Carts() CartRepository
	Orders() OrderRepository
	GroupPrices() GroupPriceRepository
	UniqueOffers() UniqueOfferRepository
	FlashSales() FlashSaleRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the storage reads the write side needs for
// validation and price resolution. Everything returns plain snapshots.
type CommandReads interface {
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	CustomerByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductSnapshot, error)
	CartByCustomer(ctx context.Context, customerID uuid.UUID) (*CartSnapshot, error)
	// OffersFor loads the discount configuration for every given
	// product as one consistent read: active unique offers for the
	// customer, flash sales, and the group's fixed-price overrides.
	OffersFor(ctx context.Context, customerID *uuid.UUID, groupID *uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]pricing.Offers, error)
	GroupPriceBaseline(ctx context.Context, pairs []pricing.OverrideKey) ([]pricing.OverrideChange, error)
	OrderState(ctx context.Context, orderID uuid.UUID) (*OrderStateSnapshot, error)
}

type CartRepository interface {
	EnsureCart(ctx context.Context, dbtx db.DBTX, customerID uuid.UUID) (uuid.UUID, error)
	UpsertItem(ctx context.Context, dbtx db.DBTX, cartID, productID uuid.UUID, quantity int32) error
	DeleteItem(ctx context.Context, dbtx db.DBTX, cartID, productID uuid.UUID) error
	ClearItems(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error
}

type OrderRepository interface {
	NextOrderNumber(ctx context.Context, dbtx db.DBTX) (int64, error)
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status order.Status) error
	AppendHistory(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status order.Status, note *string, at time.Time) error
}

type GroupPriceRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, productID, groupID uuid.UUID, priceCents int64) error
	Delete(ctx context.Context, dbtx db.DBTX, productID, groupID uuid.UUID) error
}

type UniqueOfferRepository interface {
	DeactivateActive(ctx context.Context, dbtx db.DBTX, customerID, productID uuid.UUID) error
	Create(ctx context.Context, dbtx db.DBTX, offer pricing.UniqueOfferSpec) (uuid.UUID, error)
}

type FlashSaleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, sale pricing.FlashSaleSpec) (uuid.UUID, error)
	Deactivate(ctx context.Context, dbtx db.DBTX, saleID uuid.UUID) error
}
