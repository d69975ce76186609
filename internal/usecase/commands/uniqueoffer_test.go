//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUniqueOfferCommands(store *fakeStore) commands.UniqueOfferCommands {
	return commands.NewUniqueOfferCommands(&fakeUoW{store: store}, clock.NewMockClock(placeOrderAt))
}

func TestCreateUniqueOfferDeactivatesPriorActive(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	store.uniqueOffers = append(store.uniqueOffers, pricing.UniqueOfferSpec{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  productID,
		PriceCents: 7500,
		Unlimited:  true,
		Active:     true,
		CreatedAt:  placeOrderAt.Add(-24 * time.Hour),
	})
	svc := newUniqueOfferCommands(store)

	offerID, err := svc.Create(context.Background(), commands.CreateUniqueOfferInput{
		CustomerID: customerID,
		ProductID:  productID,
		PriceCents: 7000,
		Unlimited:  true,
	})

	require.NoError(t, err)
	require.Len(t, store.uniqueOffers, 2)

	old := store.uniqueOffers[0]
	assert.False(t, old.Active, "the prior offer must be retired in the same transaction")

	created := store.uniqueOffers[1]
	assert.Equal(t, offerID, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, int64(7000), created.PriceCents)
	assert.Equal(t, placeOrderAt, created.CreatedAt)
}

func TestCreateUniqueOfferWindowed(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	svc := newUniqueOfferCommands(store)

	from := placeOrderAt
	to := placeOrderAt.Add(7 * 24 * time.Hour)
	_, err := svc.Create(context.Background(), commands.CreateUniqueOfferInput{
		CustomerID: customerID,
		ProductID:  productID,
		PriceCents: 8000,
		ValidFrom:  &from,
		ValidTo:    &to,
	})

	require.NoError(t, err)
	require.Len(t, store.uniqueOffers, 1)
	assert.Equal(t, from, *store.uniqueOffers[0].ValidFrom)
	assert.Equal(t, to, *store.uniqueOffers[0].ValidTo)
}

func TestCreateUniqueOfferRejectsBadInput(t *testing.T) {
	store := newFakeStore()
	customerID := seedCustomer(store)
	productID := seedProduct(store, 10000, true)
	svc := newUniqueOfferCommands(store)

	from := placeOrderAt
	to := placeOrderAt.Add(-time.Hour)

	tests := []struct {
		name    string
		input   commands.CreateUniqueOfferInput
		wantErr error
	}{
		{
			name: "inverted window",
			input: commands.CreateUniqueOfferInput{
				CustomerID: customerID, ProductID: productID,
				PriceCents: 8000, ValidFrom: &from, ValidTo: &to,
			},
			wantErr: commands.ErrInvalidOfferWindow,
		},
		{
			name: "window missing without unlimited",
			input: commands.CreateUniqueOfferInput{
				CustomerID: customerID, ProductID: productID, PriceCents: 8000,
			},
			wantErr: commands.ErrInvalidOfferWindow,
		},
		{
			name: "negative price",
			input: commands.CreateUniqueOfferInput{
				CustomerID: customerID, ProductID: productID,
				PriceCents: -1, Unlimited: true,
			},
			wantErr: commands.ErrInvalidOfferPrice,
		},
		{
			name: "unknown customer",
			input: commands.CreateUniqueOfferInput{
				CustomerID: uuid.New(), ProductID: productID,
				PriceCents: 8000, Unlimited: true,
			},
			wantErr: commands.ErrCustomerNotFound,
		},
		{
			name: "unknown product",
			input: commands.CreateUniqueOfferInput{
				CustomerID: customerID, ProductID: uuid.New(),
				PriceCents: 8000, Unlimited: true,
			},
			wantErr: commands.ErrProductNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.uniqueOffers)
		})
	}
}
