//go:build unit

package commands_test

import (
	"context"
	"testing"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUpsertAppliesEachCell(t *testing.T) {
	store := newFakeStore()
	svc := commands.NewGroupPriceCommands(&fakeUoW{store: store})

	k1 := pricing.OverrideKey{ProductID: uuid.New(), GroupID: uuid.New()}
	k2 := pricing.OverrideKey{ProductID: uuid.New(), GroupID: k1.GroupID}

	results, err := svc.BulkUpsert(context.Background(), []commands.OverridePriceInput{
		{ProductID: k1.ProductID, GroupID: k1.GroupID, Value: "80.00"},
		{ProductID: k2.ProductID, GroupID: k2.GroupID, Value: "12.50"},
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.OK)
		assert.Empty(t, r.Error)
	}
	assert.Equal(t, int64(8000), store.groupPrices[k1])
	assert.Equal(t, int64(1250), store.groupPrices[k2])
}

func TestBulkUpsertBlankRevertsEarlierValueInBatch(t *testing.T) {
	store := newFakeStore()
	key := pricing.OverrideKey{ProductID: uuid.New(), GroupID: uuid.New()}
	store.groupPrices[key] = 5000
	svc := commands.NewGroupPriceCommands(&fakeUoW{store: store})

	// The same cell appears twice: a value followed by a blank. The
	// blank is the admin's last word, so the override must be gone.
	results, err := svc.BulkUpsert(context.Background(), []commands.OverridePriceInput{
		{ProductID: key.ProductID, GroupID: key.GroupID, Value: "80.00"},
		{ProductID: key.ProductID, GroupID: key.GroupID, Value: ""},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
	_, exists := store.groupPrices[key]
	assert.False(t, exists, "override should have been removed, not re-upserted")
}

func TestBulkUpsertValueAfterBlankWins(t *testing.T) {
	store := newFakeStore()
	key := pricing.OverrideKey{ProductID: uuid.New(), GroupID: uuid.New()}
	store.groupPrices[key] = 5000
	svc := commands.NewGroupPriceCommands(&fakeUoW{store: store})

	results, err := svc.BulkUpsert(context.Background(), []commands.OverridePriceInput{
		{ProductID: key.ProductID, GroupID: key.GroupID, Value: ""},
		{ProductID: key.ProductID, GroupID: key.GroupID, Value: "80.00"},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
	assert.Equal(t, int64(8000), store.groupPrices[key])
}

func TestBulkUpsertPartialFailure(t *testing.T) {
	store := newFakeStore()
	good := pricing.OverrideKey{ProductID: uuid.New(), GroupID: uuid.New()}
	orphan := pricing.OverrideKey{ProductID: uuid.New(), GroupID: good.GroupID}
	store.unknownPairs[orphan] = true
	garbled := pricing.OverrideKey{ProductID: uuid.New(), GroupID: good.GroupID}
	svc := commands.NewGroupPriceCommands(&fakeUoW{store: store})

	results, err := svc.BulkUpsert(context.Background(), []commands.OverridePriceInput{
		{ProductID: good.ProductID, GroupID: good.GroupID, Value: "25.00"},
		{ProductID: orphan.ProductID, GroupID: orphan.GroupID, Value: "30.00"},
		{ProductID: garbled.ProductID, GroupID: garbled.GroupID, Value: "abc"},
	})

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.Equal(t, "unknown product or group", results[1].Error)
	assert.False(t, results[2].OK)
	assert.Equal(t, "invalid override value", results[2].Error)

	assert.Equal(t, int64(2500), store.groupPrices[good])
	_, exists := store.groupPrices[orphan]
	assert.False(t, exists)
	_, exists = store.groupPrices[garbled]
	assert.False(t, exists)
}

func TestBulkUpsertEmptyBatch(t *testing.T) {
	svc := commands.NewGroupPriceCommands(&fakeUoW{store: newFakeStore()})

	results, err := svc.BulkUpsert(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}
