package commands

import (
	"context"
	"time"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUniqueOfferInput struct {
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	PriceCents int64
	ValidFrom  *time.Time
	ValidTo    *time.Time
	Unlimited  bool
}

type UniqueOfferCommands interface {
	// Create grants a customer-specific price. Any prior active offer
	// for the same (customer, product) pair is deactivated in the same
	// transaction so at most one offer is live per pair.
	Create(ctx context.Context, input CreateUniqueOfferInput) (uuid.UUID, error)
}

type uniqueOfferCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUniqueOfferCommands(uow shared.UnitOfWork, clk clock.Clock) UniqueOfferCommands {
	return &uniqueOfferCommandsImpl{uow: uow, clock: clk}
}

func (u *uniqueOfferCommandsImpl) Create(ctx context.Context, input CreateUniqueOfferInput) (uuid.UUID, error) {
	if input.PriceCents < 0 {
		return uuid.Nil, ErrInvalidOfferPrice
	}
	if !input.Unlimited {
		if input.ValidFrom == nil || input.ValidTo == nil {
			return uuid.Nil, ErrInvalidOfferWindow
		}
		if input.ValidTo.Before(*input.ValidFrom) {
			return uuid.Nil, ErrInvalidOfferWindow
		}
	}

	var offerID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CustomerByID(ctx, input.CustomerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		products, err := tx.Reads().ProductsByIDs(ctx, []uuid.UUID{input.ProductID})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(products) == 0 {
			return ErrProductNotFound
		}

		if err := tx.UniqueOffers().DeactivateActive(ctx, tx.DB(), input.CustomerID, input.ProductID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		offerID, err = tx.UniqueOffers().Create(ctx, tx.DB(), pricing.UniqueOfferSpec{
			CustomerID: input.CustomerID,
			ProductID:  input.ProductID,
			PriceCents: input.PriceCents,
			ValidFrom:  input.ValidFrom,
			ValidTo:    input.ValidTo,
			Unlimited:  input.Unlimited,
			Active:     true,
			CreatedAt:  u.clock.Now(),
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return offerID, nil
}
