package commands

import (
	"context"
	"time"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateFlashSaleInput struct {
	ProductID  uuid.UUID
	PriceCents int64
	StartsAt   time.Time
	EndsAt     time.Time
}

type FlashSaleCommands interface {
	Create(ctx context.Context, input CreateFlashSaleInput) (uuid.UUID, error)
	// End deactivates a sale before its window closes.
	End(ctx context.Context, saleID uuid.UUID) error
}

type flashSaleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFlashSaleCommands(uow shared.UnitOfWork) FlashSaleCommands {
	return &flashSaleCommandsImpl{uow: uow}
}

func (f *flashSaleCommandsImpl) Create(ctx context.Context, input CreateFlashSaleInput) (uuid.UUID, error) {
	if input.PriceCents < 0 {
		return uuid.Nil, ErrInvalidOfferPrice
	}
	if !input.EndsAt.After(input.StartsAt) {
		return uuid.Nil, ErrInvalidOfferWindow
	}

	var saleID uuid.UUID
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		products, err := tx.Reads().ProductsByIDs(ctx, []uuid.UUID{input.ProductID})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(products) == 0 {
			return ErrProductNotFound
		}

		saleID, err = tx.FlashSales().Create(ctx, tx.DB(), pricing.FlashSaleSpec{
			ProductID:  input.ProductID,
			PriceCents: input.PriceCents,
			StartsAt:   input.StartsAt,
			EndsAt:     input.EndsAt,
			Active:     true,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return saleID, nil
}

func (f *flashSaleCommandsImpl) End(ctx context.Context, saleID uuid.UUID) error {
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.FlashSales().Deactivate(ctx, tx.DB(), saleID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFlashSaleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
