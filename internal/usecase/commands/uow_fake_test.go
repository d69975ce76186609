//go:build unit

package commands_test

import (
	"context"
	"time"

	"engros-ordering/internal/domain/order"
	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the Postgres-backed unit of
// work. Within snapshots the whole state up front and restores it when
// the transaction function fails, so rollback behaviour is observable.
type fakeStore struct {
	customers    map[uuid.UUID]shared.CustomerSnapshot
	products     map[uuid.UUID]shared.ProductSnapshot
	carts        map[uuid.UUID]*fakeCart
	groupPrices  map[pricing.OverrideKey]int64
	unknownPairs map[pricing.OverrideKey]bool
	uniqueOffers []pricing.UniqueOfferSpec
	flashSales   map[uuid.UUID]pricing.FlashSaleSpec
	orders       map[uuid.UUID]*fakeOrder
	orderSeq     int64
}

type fakeCart struct {
	id    uuid.UUID
	items []shared.CartItemSnapshot
}

type fakeOrder struct {
	number   int64
	status   string
	placedAt time.Time
	lines    []order.Line
	history  []fakeHistoryEntry
}

type fakeHistoryEntry struct {
	status string
	note   *string
	at     time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:    make(map[uuid.UUID]shared.CustomerSnapshot),
		products:     make(map[uuid.UUID]shared.ProductSnapshot),
		carts:        make(map[uuid.UUID]*fakeCart),
		groupPrices:  make(map[pricing.OverrideKey]int64),
		unknownPairs: make(map[pricing.OverrideKey]bool),
		flashSales:   make(map[uuid.UUID]pricing.FlashSaleSpec),
		orders:       make(map[uuid.UUID]*fakeOrder),
		orderSeq:     1000,
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = &fakeCart{id: v.id, items: append([]shared.CartItemSnapshot(nil), v.items...)}
	}
	for k, v := range s.groupPrices {
		c.groupPrices[k] = v
	}
	for k, v := range s.unknownPairs {
		c.unknownPairs[k] = v
	}
	c.uniqueOffers = append([]pricing.UniqueOfferSpec(nil), s.uniqueOffers...)
	for k, v := range s.flashSales {
		c.flashSales[k] = v
	}
	for k, v := range s.orders {
		o := *v
		o.lines = append([]order.Line(nil), v.lines...)
		o.history = append([]fakeHistoryEntry(nil), v.history...)
		c.orders[k] = &o
	}
	c.orderSeq = s.orderSeq
	return c
}

func (s *fakeStore) cartByID(cartID uuid.UUID) *fakeCart {
	for _, c := range s.carts {
		if c.id == cartID {
			return c
		}
	}
	return nil
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := u.store.clone()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		*u.store = *backup
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Carts() shared.CartRepository { return &fakeCartRepo{store: t.store} }

func (t *fakeTx) Orders() shared.OrderRepository { return &fakeOrderRepo{store: t.store} }

func (t *fakeTx) GroupPrices() shared.GroupPriceRepository { return &fakeGroupPriceRepo{store: t.store} }

func (t *fakeTx) UniqueOffers() shared.UniqueOfferRepository { return &fakeUniqueOfferRepo{store: t.store} }

func (t *fakeTx) FlashSales() shared.FlashSaleRepository { return &fakeFlashSaleRepo{store: t.store} }

func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

func (t *fakeTx) DB() db.DBTX { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	cust, ok := r.store.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return &cust, nil
}

func (r *fakeReads) CustomerByEmail(_ context.Context, email string) (*shared.CustomerSnapshot, error) {
	for _, cust := range r.store.customers {
		if cust.Email == email {
			return &cust, nil
		}
	}
	return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	products := make([]shared.ProductSnapshot, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *fakeReads) CartByCustomer(_ context.Context, customerID uuid.UUID) (*shared.CartSnapshot, error) {
	c, ok := r.store.carts[customerID]
	if !ok {
		return nil, infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	return &shared.CartSnapshot{
		ID:         c.id,
		CustomerID: customerID,
		Items:      append([]shared.CartItemSnapshot(nil), c.items...),
	}, nil
}

func (r *fakeReads) OffersFor(_ context.Context, customerID *uuid.UUID, groupID *uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]pricing.Offers, error) {
	out := make(map[uuid.UUID]pricing.Offers, len(productIDs))
	for _, pid := range productIDs {
		var offers pricing.Offers
		if customerID != nil {
			for _, uo := range r.store.uniqueOffers {
				if uo.Active && uo.CustomerID == *customerID && uo.ProductID == pid {
					offers.UniqueOffers = append(offers.UniqueOffers, uo)
				}
			}
		}
		for _, fs := range r.store.flashSales {
			if fs.Active && fs.ProductID == pid {
				offers.FlashSales = append(offers.FlashSales, fs)
			}
		}
		if groupID != nil {
			if cents, ok := r.store.groupPrices[pricing.OverrideKey{ProductID: pid, GroupID: *groupID}]; ok {
				price := cents
				offers.GroupPriceCents = &price
			}
		}
		out[pid] = offers
	}
	return out, nil
}

func (r *fakeReads) GroupPriceBaseline(_ context.Context, pairs []pricing.OverrideKey) ([]pricing.OverrideChange, error) {
	changes := make([]pricing.OverrideChange, 0, len(pairs))
	for _, key := range pairs {
		if cents, ok := r.store.groupPrices[key]; ok {
			changes = append(changes, pricing.OverrideChange{
				ProductID:  key.ProductID,
				GroupID:    key.GroupID,
				PriceCents: cents,
			})
		}
	}
	return changes, nil
}

func (r *fakeReads) OrderState(_ context.Context, orderID uuid.UUID) (*shared.OrderStateSnapshot, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &shared.OrderStateSnapshot{ID: orderID, Status: o.status, PlacedAt: o.placedAt}, nil
}

type fakeCartRepo struct {
	store *fakeStore
}

func (r *fakeCartRepo) EnsureCart(_ context.Context, _ db.DBTX, customerID uuid.UUID) (uuid.UUID, error) {
	if c, ok := r.store.carts[customerID]; ok {
		return c.id, nil
	}
	c := &fakeCart{id: uuid.New()}
	r.store.carts[customerID] = c
	return c.id, nil
}

func (r *fakeCartRepo) UpsertItem(_ context.Context, _ db.DBTX, cartID, productID uuid.UUID, quantity int32) error {
	c := r.store.cartByID(cartID)
	if c == nil {
		return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	c.items = append(c.items, shared.CartItemSnapshot{ProductID: productID, Quantity: quantity})
	return nil
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, _ db.DBTX, cartID, productID uuid.UUID) error {
	c := r.store.cartByID(cartID)
	if c == nil {
		return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return nil
}

func (r *fakeCartRepo) ClearItems(_ context.Context, _ db.DBTX, cartID uuid.UUID) error {
	c := r.store.cartByID(cartID)
	if c == nil {
		return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	c.items = nil
	return nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) NextOrderNumber(_ context.Context, _ db.DBTX) (int64, error) {
	n := r.store.orderSeq
	r.store.orderSeq++
	return n, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	history := make([]fakeHistoryEntry, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, fakeHistoryEntry{status: h.Status.String(), note: h.Note, at: h.At})
	}
	r.store.orders[o.ID()] = &fakeOrder{
		number:   o.OrderNumber(),
		status:   o.Status().String(),
		placedAt: o.PlacedAt(),
		lines:    append([]order.Line(nil), o.Lines()...),
		history:  history,
	}
	return o.ID(), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, orderID uuid.UUID, status order.Status) error {
	o, ok := r.store.orders[orderID]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.status = status.String()
	return nil
}

func (r *fakeOrderRepo) AppendHistory(_ context.Context, _ db.DBTX, orderID uuid.UUID, status order.Status, note *string, at time.Time) error {
	o, ok := r.store.orders[orderID]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.history = append(o.history, fakeHistoryEntry{status: status.String(), note: note, at: at})
	return nil
}

type fakeGroupPriceRepo struct {
	store *fakeStore
}

func (r *fakeGroupPriceRepo) Upsert(_ context.Context, _ db.DBTX, productID, groupID uuid.UUID, priceCents int64) error {
	key := pricing.OverrideKey{ProductID: productID, GroupID: groupID}
	if r.store.unknownPairs[key] {
		return infra.WrapRepoErr("failed to upsert group price", nil, infra.KindForeignKeyViolated)
	}
	r.store.groupPrices[key] = priceCents
	return nil
}

func (r *fakeGroupPriceRepo) Delete(_ context.Context, _ db.DBTX, productID, groupID uuid.UUID) error {
	delete(r.store.groupPrices, pricing.OverrideKey{ProductID: productID, GroupID: groupID})
	return nil
}

type fakeUniqueOfferRepo struct {
	store *fakeStore
}

func (r *fakeUniqueOfferRepo) DeactivateActive(_ context.Context, _ db.DBTX, customerID, productID uuid.UUID) error {
	for i := range r.store.uniqueOffers {
		uo := &r.store.uniqueOffers[i]
		if uo.CustomerID == customerID && uo.ProductID == productID {
			uo.Active = false
		}
	}
	return nil
}

func (r *fakeUniqueOfferRepo) Create(_ context.Context, _ db.DBTX, offer pricing.UniqueOfferSpec) (uuid.UUID, error) {
	offer.ID = uuid.New()
	r.store.uniqueOffers = append(r.store.uniqueOffers, offer)
	return offer.ID, nil
}

type fakeFlashSaleRepo struct {
	store *fakeStore
}

func (r *fakeFlashSaleRepo) Create(_ context.Context, _ db.DBTX, sale pricing.FlashSaleSpec) (uuid.UUID, error) {
	sale.ID = uuid.New()
	r.store.flashSales[sale.ID] = sale
	return sale.ID, nil
}

func (r *fakeFlashSaleRepo) Deactivate(_ context.Context, _ db.DBTX, saleID uuid.UUID) error {
	sale, ok := r.store.flashSales[saleID]
	if !ok {
		return infra.WrapRepoErr("flash sale not found", nil, infra.KindNotFound)
	}
	sale.Active = false
	r.store.flashSales[saleID] = sale
	return nil
}

// Read-side stubs so the commands can hand back refreshed views
// without dragging the SQL read stores into these tests.

type stubOrderQueries struct {
	store *fakeStore
}

func (s *stubOrderQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	o, ok := s.store.orders[id]
	if !ok {
		return nil, queries.ErrOrderNotFound
	}
	return &queries.OrderView{
		ID:          id,
		OrderNumber: o.number,
		Status:      o.status,
		PlacedAt:    o.placedAt,
	}, nil
}

func (s *stubOrderQueries) ListByCustomer(_ context.Context, _ uuid.UUID) ([]queries.OrderListItem, error) {
	return nil, nil
}

type stubCartQueries struct {
	store *fakeStore
}

func (s *stubCartQueries) View(_ context.Context, customerID uuid.UUID) (*queries.CartView, error) {
	view := &queries.CartView{Items: []queries.CartItemView{}}
	if c, ok := s.store.carts[customerID]; ok {
		for _, it := range c.items {
			view.TotalItems += it.Quantity
		}
	}
	return view, nil
}
