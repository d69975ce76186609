//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeOrderAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func seedCustomer(store *fakeStore) uuid.UUID {
	id := uuid.New()
	store.customers[id] = shared.CustomerSnapshot{
		ID:              id,
		Email:           "mette@havnen.dk",
		CompanyName:     "Restaurant Havnen ApS",
		ContactName:     "Mette Sørensen",
		Role:            "customer",
		GroupID:         uuid.New(),
		GroupName:       "Guld",
		GroupPercentOff: 10,
		GroupActive:     true,
		Active:          true,
	}
	return id
}

func seedProduct(store *fakeStore, priceCents int64, active bool) uuid.UUID {
	id := uuid.New()
	store.products[id] = shared.ProductSnapshot{
		ID:             id,
		Name:           "Økologiske æbler",
		Unit:           "kasse",
		BasePriceCents: priceCents,
		Active:         active,
	}
	return id
}

func seedCart(store *fakeStore, customerID uuid.UUID, items ...shared.CartItemSnapshot) {
	store.carts[customerID] = &fakeCart{id: uuid.New(), items: items}
}

func newOrderCommands(store *fakeStore) commands.OrderCommands {
	return commands.NewOrderCommands(
		&fakeUoW{store: store},
		&stubOrderQueries{store: store},
		clock.NewMockClock(placeOrderAt),
	)
}

func deliveryInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		DeliveryAddress: "Havnegade 12",
		DeliveryCity:    "Aarhus",
		DeliveryZip:     "8000",
	}
}

func TestPlaceFreezesCartAndClearsIt(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	seedCart(store, customerID, shared.CartItemSnapshot{ProductID: productID, Quantity: 3})
	svc := newOrderCommands(store)

	view, err := svc.Place(context.Background(), customerID, deliveryInput())

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, int64(1000), view.OrderNumber)

	placed := store.orders[view.ID]
	require.NotNil(t, placed)
	assert.Equal(t, "order_placed", placed.status)
	assert.Equal(t, placeOrderAt, placed.placedAt)
	require.Len(t, placed.history, 1)
	assert.Equal(t, "order_placed", placed.history[0].status)

	require.Len(t, placed.lines, 1)
	line := placed.lines[0]
	assert.Equal(t, int64(9000), line.PriceCents)
	assert.Equal(t, int64(10000), line.OriginalPriceCents)
	assert.Equal(t, "rabatGruppe", line.DiscountType)
	assert.Equal(t, int64(27000), line.TotalCents)
	assert.Equal(t, int64(3000), line.SavingsCents)

	assert.Empty(t, store.carts[customerID].items, "the source cart is consumed by the placement")
}

func TestPlaceInactiveProductAbortsWholeOrder(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	activeID := seedProduct(store, 10000, true)
	inactiveID := seedProduct(store, 4500, false)
	seedCart(store, customerID,
		shared.CartItemSnapshot{ProductID: activeID, Quantity: 2},
		shared.CartItemSnapshot{ProductID: inactiveID, Quantity: 1},
	)
	svc := newOrderCommands(store)

	_, err := svc.Place(context.Background(), customerID, deliveryInput())

	assert.ErrorIs(t, err, commands.ErrProductInactive)
	assert.Empty(t, store.orders, "no order row may survive a rejected placement")
	assert.Len(t, store.carts[customerID].items, 2, "cart must be untouched after rollback")
	assert.Equal(t, int64(1000), store.orderSeq, "no order number may be consumed")
}

func TestPlaceEmptyCart(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	svc := newOrderCommands(store)

	t.Run("no cart row yet", func(t *testing.T) {
		_, err := svc.Place(context.Background(), customerID, deliveryInput())
		assert.ErrorIs(t, err, commands.ErrCartEmpty)
	})

	t.Run("cart row without lines", func(t *testing.T) {
		seedCart(store, customerID)
		_, err := svc.Place(context.Background(), customerID, deliveryInput())
		assert.ErrorIs(t, err, commands.ErrCartEmpty)
	})
}

func TestPlaceUnknownCustomer(t *testing.T) {
	store := newFakeStore()
	svc := newOrderCommands(store)

	_, err := svc.Place(context.Background(), uuid.New(), deliveryInput())

	assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
}

func TestTransitionAppendsHistory(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	seedCart(store, customerID, shared.CartItemSnapshot{ProductID: productID, Quantity: 1})
	svc := newOrderCommands(store)

	view, err := svc.Place(context.Background(), customerID, deliveryInput())
	require.NoError(t, err)

	note := "Bekræftet af lageret"
	updated, err := svc.Transition(context.Background(), view.ID, "order_confirmed", &note)
	require.NoError(t, err)
	assert.Equal(t, "order_confirmed", updated.Status)

	placed := store.orders[view.ID]
	assert.Equal(t, "order_confirmed", placed.status)
	require.Len(t, placed.history, 2)
	assert.Equal(t, "order_confirmed", placed.history[1].status)
	require.NotNil(t, placed.history[1].note)
	assert.Equal(t, note, *placed.history[1].note)
}

func TestTransitionRejectsIllegalStep(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	seedCart(store, customerID, shared.CartItemSnapshot{ProductID: productID, Quantity: 1})
	svc := newOrderCommands(store)

	view, err := svc.Place(context.Background(), customerID, deliveryInput())
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), view.ID, "invoiced", nil)
	assert.ErrorIs(t, err, commands.ErrInvalidTransition)

	placed := store.orders[view.ID]
	assert.Equal(t, "order_placed", placed.status)
	assert.Len(t, placed.history, 1)
}

func TestTransitionUnknownOrder(t *testing.T) {
	svc := newOrderCommands(newFakeStore())

	_, err := svc.Transition(context.Background(), uuid.New(), "order_confirmed", nil)

	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}
