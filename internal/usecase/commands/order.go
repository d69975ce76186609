package commands

import (
	"context"
	"errors"

	"engros-ordering/internal/domain/cart"
	"engros-ordering/internal/domain/order"
	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PlaceOrderInput struct {
	DeliveryAddress string
	DeliveryCity    string
	DeliveryZip     string
	DeliveryNote    string
}

type OrderCommands interface {
	// Place freezes the customer's live cart into an immutable order:
	// prices are resolved one final time inside the transaction and
	// copied; nothing on the order is ever recomputed afterwards.
	Place(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*queries.OrderView, error)
	// Transition applies an admin-driven status change, appending to
	// the order's append-only history.
	Transition(ctx context.Context, orderID uuid.UUID, newStatus string, note *string) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, orderQueries queries.OrderQueries, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		orderQueries: orderQueries,
		clock:        clk,
	}
}

func (o *orderCommandsImpl) Place(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*queries.OrderView, error) {
	if customerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	var orderID uuid.UUID
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Reads().CustomerByID(ctx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cartSnap, err := tx.Reads().CartByCustomer(ctx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCartEmpty
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(cartSnap.Items) == 0 {
			return ErrCartEmpty
		}

		lines, inactive, err := o.resolveLines(ctx, tx, cust, cartSnap)
		if err != nil {
			return err
		}

		orderNumber, err := tx.Orders().NextOrderNumber(ctx, tx.DB())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := order.New(
			customerSnapshot(cust),
			order.DeliveryInfo{
				Address: input.DeliveryAddress,
				City:    input.DeliveryCity,
				Zip:     input.DeliveryZip,
				Note:    input.DeliveryNote,
			},
			lines,
			inactive,
			orderNumber,
			o.clock.Now(),
		)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrEmptyCart):
				return ErrCartEmpty
			case errors.Is(err, order.ErrProductInactive):
				return ErrProductInactive
			default:
				return err
			}
		}

		orderID, err = tx.Orders().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// The source cart is consumed by the placement; clearing it
		// in the same transaction keeps the two in step.
		if err := tx.Carts().ClearItems(ctx, tx.DB(), cartSnap.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return o.orderQueries.GetByID(ctx, orderID)
}

func (o *orderCommandsImpl) resolveLines(
	ctx context.Context,
	tx shared.Tx,
	cust *shared.CustomerSnapshot,
	cartSnap *shared.CartSnapshot,
) ([]cart.PricedLine, []uuid.UUID, error) {
	productIDs := make([]uuid.UUID, len(cartSnap.Items))
	for i, it := range cartSnap.Items {
		productIDs[i] = it.ProductID
	}

	products, err := tx.Reads().ProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(products) != len(productIDs) {
		return nil, nil, ErrProductNotFound
	}
	byID := make(map[uuid.UUID]shared.ProductSnapshot, len(products))
	specs := make([]pricing.ProductSpec, len(products))
	for i, p := range products {
		byID[p.ID] = p
		specs[i] = p.PricingSpec()
	}

	offersByProduct, err := tx.Reads().OffersFor(ctx, &cust.ID, &cust.GroupID, productIDs)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	spec := &pricing.CustomerSpec{
		ID: cust.ID,
		Group: pricing.GroupSpec{
			ID:         cust.GroupID,
			Name:       cust.GroupName,
			PercentOff: cust.GroupPercentOff,
			Active:     cust.GroupActive,
		},
	}

	now := o.clock.Now()
	lines := make([]cart.PricedLine, len(cartSnap.Items))
	for i, it := range cartSnap.Items {
		product := byID[it.ProductID]
		lines[i] = cart.PricedLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Unit:        product.Unit,
			Quantity:    it.Quantity,
			Quote:       pricing.Resolve(product.PricingSpec(), spec, offersByProduct[it.ProductID], now),
		}
	}

	return lines, order.InactiveProducts(specs), nil
}

func (o *orderCommandsImpl) Transition(ctx context.Context, orderID uuid.UUID, newStatus string, note *string) (*queries.OrderView, error) {
	next, err := order.NewStatus(newStatus)
	if err != nil {
		return nil, ErrInvalidTransition
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := tx.Reads().OrderState(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		current := order.Status(state.Status)
		if !current.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return tx.Orders().AppendHistory(ctx, tx.DB(), orderID, next, note, o.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return o.orderQueries.GetByID(ctx, orderID)
}

// customerSnapshot copies the write-side customer read into the frozen
// order snapshot. copier matches on field names; the differing ID field
// is set explicitly.
func customerSnapshot(cust *shared.CustomerSnapshot) order.CustomerSnapshot {
	var snap order.CustomerSnapshot
	_ = copier.Copy(&snap, cust)
	snap.CustomerID = cust.ID
	return snap
}
