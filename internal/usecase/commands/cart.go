package commands

import (
	"context"

	"engros-ordering/internal/domain/cart"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*queries.CartView, error)
	UpdateItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*queries.CartView, error)
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*queries.CartView, error)
	Clear(ctx context.Context, customerID uuid.UUID) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	uow         shared.UnitOfWork
	cartQueries queries.CartQueries
}

func NewCartCommands(uow shared.UnitOfWork, cartQueries queries.CartQueries) CartCommands {
	return &cartCommandsImpl{
		uow:         uow,
		cartQueries: cartQueries,
	}
}

// Each mutation is one atomic read-modify-write against the customer's
// own cart, then the refreshed view is recomputed outside the
// transaction at its own timestamp.
func (c *cartCommandsImpl) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*queries.CartView, error) {
	if customerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkProduct(ctx, tx, productID); err != nil {
			return err
		}

		entity, cartID, err := loadCart(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if err := entity.AddItem(productID, quantity); err != nil {
			return errs.Mark(err, ErrInvalidQuantity)
		}
		return tx.Carts().UpsertItem(ctx, tx.DB(), cartID, productID, entity.Quantity(productID))
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.View(ctx, customerID)
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*queries.CartView, error) {
	if customerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.RemoveItem(ctx, customerID, productID)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkProduct(ctx, tx, productID); err != nil {
			return err
		}

		entity, cartID, err := loadCart(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if err := entity.UpdateItem(productID, quantity); err != nil {
			return errs.Mark(err, ErrInvalidQuantity)
		}
		return tx.Carts().UpsertItem(ctx, tx.DB(), cartID, productID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.View(ctx, customerID)
}

// RemoveItem is idempotent; removing a product that is not in the cart
// succeeds and returns the unchanged view.
func (c *cartCommandsImpl) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*queries.CartView, error) {
	if customerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cartID, err := loadCart(ctx, tx, customerID)
		if err != nil {
			return err
		}
		return tx.Carts().DeleteItem(ctx, tx.DB(), cartID, productID)
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.View(ctx, customerID)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, customerID uuid.UUID) (*queries.CartView, error) {
	if customerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cartID, err := loadCart(ctx, tx, customerID)
		if err != nil {
			return err
		}
		return tx.Carts().ClearItems(ctx, tx.DB(), cartID)
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.View(ctx, customerID)
}

func (c *cartCommandsImpl) checkProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) error {
	products, err := tx.Reads().ProductsByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(products) == 0 {
		return ErrProductNotFound
	}
	if !products[0].Active {
		return ErrProductInactive
	}
	return nil
}

// loadCart reconstructs the customer's cart, creating the row on first
// use.
func loadCart(ctx context.Context, tx shared.Tx, customerID uuid.UUID) (*cart.Cart, uuid.UUID, error) {
	snapshot, err := tx.Reads().CartByCustomer(ctx, customerID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cartID, err := tx.Carts().EnsureCart(ctx, tx.DB(), customerID)
		if err != nil {
			return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return cart.Reconstruct(cartID, customerID, nil), cartID, nil
	}

	items := make([]cart.Item, len(snapshot.Items))
	for i, it := range snapshot.Items {
		items[i] = cart.Item{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return cart.Reconstruct(snapshot.ID, customerID, items), snapshot.ID, nil
}
