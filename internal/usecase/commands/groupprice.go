package commands

import (
	"context"
	"strings"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
)

// OverridePriceInput is one cell of the admin bulk edit. A blank value
// deletes the override so the group falls back to its percentage.
type OverridePriceInput struct {
	ProductID uuid.UUID
	GroupID   uuid.UUID
	Value     string
}

type GroupPriceCommands interface {
	// BulkUpsert applies a batch of offer-group price edits
	// best-effort: every entry gets its own result and one bad entry
	// never blocks the rest of the batch.
	BulkUpsert(ctx context.Context, inputs []OverridePriceInput) ([]pricing.OverrideResult, error)
}

type groupPriceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGroupPriceCommands(uow shared.UnitOfWork) GroupPriceCommands {
	return &groupPriceCommandsImpl{uow: uow}
}

func (g *groupPriceCommandsImpl) BulkUpsert(ctx context.Context, inputs []OverridePriceInput) ([]pricing.OverrideResult, error) {
	if len(inputs) == 0 {
		return []pricing.OverrideResult{}, nil
	}

	keys := make([]pricing.OverrideKey, len(inputs))
	for i, in := range inputs {
		keys[i] = pricing.OverrideKey{ProductID: in.ProductID, GroupID: in.GroupID}
	}

	baseline, err := g.uow.CommandReads().GroupPriceBaseline(ctx, keys)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	editor := pricing.NewOverrideEditor(baseline)
	byKey := make(map[pricing.OverrideKey]pricing.OverrideResult, len(inputs))
	var deletions []pricing.OverrideKey

	for i, in := range inputs {
		if strings.TrimSpace(in.Value) == "" {
			// A blank also unstages the cell so that a value staged
			// earlier in the same batch does not outlive the revert.
			_ = editor.Stage(in.ProductID, in.GroupID, "")
			deletions = append(deletions, keys[i])
			continue
		}
		if err := editor.Stage(in.ProductID, in.GroupID, in.Value); err != nil {
			byKey[keys[i]] = pricing.OverrideResult{
				ProductID: in.ProductID,
				GroupID:   in.GroupID,
				OK:        false,
				Error:     err.Error(),
			}
		}
	}

	for _, key := range deletions {
		byKey[key] = g.deleteOverride(ctx, key)
	}

	applied, err := editor.Apply(g.submitChanges(ctx))
	if err != nil {
		return nil, err
	}
	for _, r := range applied {
		byKey[pricing.OverrideKey{ProductID: r.ProductID, GroupID: r.GroupID}] = r
	}

	results := make([]pricing.OverrideResult, 0, len(inputs))
	seen := make(map[pricing.OverrideKey]bool, len(inputs))
	for i := range inputs {
		if seen[keys[i]] {
			continue
		}
		seen[keys[i]] = true
		results = append(results, byKey[keys[i]])
	}
	return results, nil
}

// submitChanges writes each staged change in its own implicit
// transaction so one rejected row cannot roll back its neighbours.
func (g *groupPriceCommandsImpl) submitChanges(ctx context.Context) func([]pricing.OverrideChange) ([]pricing.OverrideResult, error) {
	return func(changes []pricing.OverrideChange) ([]pricing.OverrideResult, error) {
		results := make([]pricing.OverrideResult, len(changes))
		for i, ch := range changes {
			result := pricing.OverrideResult{ProductID: ch.ProductID, GroupID: ch.GroupID, OK: true}
			err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.GroupPrices().Upsert(ctx, tx.DB(), ch.ProductID, ch.GroupID, ch.PriceCents)
			})
			if err != nil {
				result.OK = false
				result.Error = overrideFailureMessage(err)
			}
			results[i] = result
		}
		return results, nil
	}
}

func (g *groupPriceCommandsImpl) deleteOverride(ctx context.Context, key pricing.OverrideKey) pricing.OverrideResult {
	result := pricing.OverrideResult{ProductID: key.ProductID, GroupID: key.GroupID, OK: true}
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.GroupPrices().Delete(ctx, tx.DB(), key.ProductID, key.GroupID)
	})
	if err != nil {
		result.OK = false
		result.Error = overrideFailureMessage(err)
	}
	return result
}

func overrideFailureMessage(err error) string {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return "unknown product or group"
	case infra.IsKind(err, infra.KindNotFound):
		return "override not found"
	default:
		return "storage failure"
	}
}
