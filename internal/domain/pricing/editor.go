package pricing

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidOverrideValue = errors.New("invalid override value")

// OverrideKey identifies one offer-group fixed-price override.
type OverrideKey struct {
	ProductID uuid.UUID
	GroupID   uuid.UUID
}

type OverrideChange struct {
	ProductID  uuid.UUID
	GroupID    uuid.UUID
	PriceCents int64
}

type OverrideResult struct {
	ProductID uuid.UUID
	GroupID   uuid.UUID
	OK        bool
	Error     string
}

// OverrideEditor stages offer-group price edits against a loaded
// baseline and submits them as one reviewable batch. Group overrides
// hit every customer in the group the moment they land, so nothing is
// written per keystroke.
type OverrideEditor struct {
	baseline map[OverrideKey]int64
	pending  map[OverrideKey]int64
}

func NewOverrideEditor(baseline []OverrideChange) *OverrideEditor {
	base := make(map[OverrideKey]int64, len(baseline))
	for _, b := range baseline {
		base[OverrideKey{ProductID: b.ProductID, GroupID: b.GroupID}] = b.PriceCents
	}
	return &OverrideEditor{
		baseline: base,
		pending:  make(map[OverrideKey]int64),
	}
}

// Stage records a pending price for (product, group). A blank value
// reverts the cell to its baseline. Invalid input (non-numeric, NaN,
// negative) is rejected without touching the buffer.
func (e *OverrideEditor) Stage(productID, groupID uuid.UUID, value string) error {
	key := OverrideKey{ProductID: productID, GroupID: groupID}

	if strings.TrimSpace(value) == "" {
		delete(e.pending, key)
		return nil
	}

	cents, err := ParseOverridePrice(value)
	if err != nil {
		return err
	}

	e.pending[key] = cents
	return nil
}

func (e *OverrideEditor) HasPendingChanges() bool {
	return len(e.pending) > 0
}

// EffectivePrice is what the admin grid displays: the pending edit if
// one exists, otherwise the baseline.
func (e *OverrideEditor) EffectivePrice(productID, groupID uuid.UUID) (int64, bool) {
	key := OverrideKey{ProductID: productID, GroupID: groupID}
	if cents, ok := e.pending[key]; ok {
		return cents, true
	}
	cents, ok := e.baseline[key]
	return cents, ok
}

// PendingChanges returns the buffer as a deterministic batch.
func (e *OverrideEditor) PendingChanges() []OverrideChange {
	changes := make([]OverrideChange, 0, len(e.pending))
	for key, cents := range e.pending {
		changes = append(changes, OverrideChange{
			ProductID:  key.ProductID,
			GroupID:    key.GroupID,
			PriceCents: cents,
		})
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].ProductID != changes[j].ProductID {
			return changes[i].ProductID.String() < changes[j].ProductID.String()
		}
		return changes[i].GroupID.String() < changes[j].GroupID.String()
	})
	return changes
}

// Apply submits the whole buffer through submit. Entries reported OK
// become the new baseline and leave the buffer; failed entries stay
// staged so the admin can retry without re-typing them.
func (e *OverrideEditor) Apply(submit func(changes []OverrideChange) ([]OverrideResult, error)) ([]OverrideResult, error) {
	if len(e.pending) == 0 {
		return nil, nil
	}

	results, err := submit(e.PendingChanges())
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		if !r.OK {
			continue
		}
		key := OverrideKey{ProductID: r.ProductID, GroupID: r.GroupID}
		if cents, ok := e.pending[key]; ok {
			e.baseline[key] = cents
			delete(e.pending, key)
		}
	}
	return results, nil
}

// ParseOverridePrice converts a decimal price string ("80.00") into
// minor units, rejecting NaN, infinities and negatives.
func ParseOverridePrice(value string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidOverrideValue
	}
	if f < 0 {
		return 0, ErrInvalidOverrideValue
	}
	return int64(math.Round(f * 100)), nil
}
