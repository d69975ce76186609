//go:build unit

package pricing_test

import (
	"testing"

	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridePrice(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantCents int64
		wantErr   bool
	}{
		{name: "plain decimal", value: "80.00", wantCents: 8000},
		{name: "integer", value: "80", wantCents: 8000},
		{name: "surrounding whitespace", value: "  12.50 ", wantCents: 1250},
		{name: "zero is allowed", value: "0", wantCents: 0},
		{name: "fraction rounds to nearest cent", value: "9.999", wantCents: 1000},
		{name: "negative rejected", value: "-1", wantErr: true},
		{name: "non-numeric rejected", value: "abc", wantErr: true},
		{name: "NaN rejected", value: "NaN", wantErr: true},
		{name: "infinity rejected", value: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := pricing.ParseOverridePrice(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, pricing.ErrInvalidOverrideValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, cents)
		})
	}
}

func TestOverrideEditorStage(t *testing.T) {
	productID := uuid.New()
	groupID := uuid.New()
	baseline := []pricing.OverrideChange{
		{ProductID: productID, GroupID: groupID, PriceCents: 8000},
	}

	t.Run("staged value shadows baseline", func(t *testing.T) {
		e := pricing.NewOverrideEditor(baseline)

		require.NoError(t, e.Stage(productID, groupID, "75.00"))

		cents, ok := e.EffectivePrice(productID, groupID)
		require.True(t, ok)
		assert.Equal(t, int64(7500), cents)
		assert.True(t, e.HasPendingChanges())
	})

	t.Run("blank value reverts the cell to baseline", func(t *testing.T) {
		e := pricing.NewOverrideEditor(baseline)
		require.NoError(t, e.Stage(productID, groupID, "75.00"))

		require.NoError(t, e.Stage(productID, groupID, "  "))

		cents, ok := e.EffectivePrice(productID, groupID)
		require.True(t, ok)
		assert.Equal(t, int64(8000), cents)
		assert.False(t, e.HasPendingChanges())
	})

	t.Run("invalid input leaves the buffer untouched", func(t *testing.T) {
		e := pricing.NewOverrideEditor(baseline)
		require.NoError(t, e.Stage(productID, groupID, "75.00"))

		err := e.Stage(productID, groupID, "not-a-price")

		assert.ErrorIs(t, err, pricing.ErrInvalidOverrideValue)
		cents, _ := e.EffectivePrice(productID, groupID)
		assert.Equal(t, int64(7500), cents)
	})

	t.Run("cell without baseline has no effective price", func(t *testing.T) {
		e := pricing.NewOverrideEditor(nil)

		_, ok := e.EffectivePrice(uuid.New(), uuid.New())

		assert.False(t, ok)
	})
}

func TestOverrideEditorPendingChanges(t *testing.T) {
	e := pricing.NewOverrideEditor(nil)
	groupID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, e.Stage(first, groupID, "10.00"))
	require.NoError(t, e.Stage(second, groupID, "20.00"))

	changes := e.PendingChanges()
	require.Len(t, changes, 2)
	assert.LessOrEqual(t, changes[0].ProductID.String(), changes[1].ProductID.String())
}

func TestOverrideEditorApply(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()
	groupID := uuid.New()

	t.Run("applied entries leave the buffer, failures stay staged", func(t *testing.T) {
		e := pricing.NewOverrideEditor(nil)
		require.NoError(t, e.Stage(productA, groupID, "10.00"))
		require.NoError(t, e.Stage(productB, groupID, "20.00"))

		results, err := e.Apply(func(changes []pricing.OverrideChange) ([]pricing.OverrideResult, error) {
			out := make([]pricing.OverrideResult, len(changes))
			for i, c := range changes {
				out[i] = pricing.OverrideResult{
					ProductID: c.ProductID,
					GroupID:   c.GroupID,
					OK:        c.ProductID == productA,
					Error:     "",
				}
				if c.ProductID != productA {
					out[i].Error = "unknown product or group"
				}
			}
			return out, nil
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, e.HasPendingChanges(), "failed entry should remain staged for retry")

		remaining := e.PendingChanges()
		require.Len(t, remaining, 1)
		assert.Equal(t, productB, remaining[0].ProductID)

		cents, ok := e.EffectivePrice(productA, groupID)
		require.True(t, ok)
		assert.Equal(t, int64(1000), cents, "applied entry becomes the new baseline")
	})

	t.Run("empty buffer submits nothing", func(t *testing.T) {
		e := pricing.NewOverrideEditor(nil)

		called := false
		results, err := e.Apply(func([]pricing.OverrideChange) ([]pricing.OverrideResult, error) {
			called = true
			return nil, nil
		})

		require.NoError(t, err)
		assert.Nil(t, results)
		assert.False(t, called)
	})

	t.Run("submit failure keeps everything staged", func(t *testing.T) {
		e := pricing.NewOverrideEditor(nil)
		require.NoError(t, e.Stage(productA, groupID, "10.00"))

		_, err := e.Apply(func([]pricing.OverrideChange) ([]pricing.OverrideResult, error) {
			return nil, assert.AnError
		})

		assert.Error(t, err)
		assert.True(t, e.HasPendingChanges())
	})
}
