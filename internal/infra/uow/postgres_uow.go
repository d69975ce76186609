package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/infra/readstore"
	"engros-ordering/internal/infra/repository"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	cartRepo        shared.CartRepository
	orderRepo       shared.OrderRepository
	groupPriceRepo  shared.GroupPriceRepository
	uniqueOfferRepo shared.UniqueOfferRepository
	flashSaleRepo   shared.FlashSaleRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository()
	}
	return t.cartRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository()
	}
	return t.orderRepo
}

func (t *pgTx) GroupPrices() shared.GroupPriceRepository {
	if t.groupPriceRepo == nil {
		t.groupPriceRepo = repository.NewGroupPriceRepository()
	}
	return t.groupPriceRepo
}

func (t *pgTx) UniqueOffers() shared.UniqueOfferRepository {
	if t.uniqueOfferRepo == nil {
		t.uniqueOfferRepo = repository.NewUniqueOfferRepository()
	}
	return t.uniqueOfferRepo
}

func (t *pgTx) FlashSales() shared.FlashSaleRepository {
	if t.flashSaleRepo == nil {
		t.flashSaleRepo = repository.NewFlashSaleRepository()
	}
	return t.flashSaleRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	customerStore   *readstore.CustomerReadStore
	productStore    *readstore.ProductReadStore
	cartStore       *readstore.CartReadStore
	pricingStore    *readstore.PricingReadStore
	groupPriceStore *readstore.GroupPriceReadStore
	orderStore      *readstore.OrderReadStore
}

func (r *commandReads) customers() *readstore.CustomerReadStore {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.dbtx)
	}
	return r.customerStore
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	row, err := r.customers().FindRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerSnapshot(row), nil
}

func (r *commandReads) CustomerByEmail(ctx context.Context, email string) (*shared.CustomerSnapshot, error) {
	row, err := r.customers().FindRowByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return customerSnapshot(row), nil
}

func customerSnapshot(row *readstore.CustomerRow) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:              row.ID,
		Email:           row.Email,
		PasswordHash:    row.PasswordHash,
		CompanyName:     row.CompanyName,
		ContactName:     row.ContactName,
		Phone:           row.Phone,
		Role:            row.Role,
		GroupID:         row.GroupID,
		GroupName:       row.GroupName,
		GroupPercentOff: row.GroupPercentOff,
		GroupActive:     row.GroupActive,
		Active:          row.Active,
	}
}

func (r *commandReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.dbtx)
	}

	products, err := r.productStore.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.ProductSnapshot, len(products))
	for i, p := range products {
		snapshots[i] = shared.ProductSnapshot{
			ID:             p.ID,
			Name:           p.Name,
			Unit:           p.Unit,
			BasePriceCents: p.BasePriceCents,
			Active:         p.Active,
		}
	}
	return snapshots, nil
}

func (r *commandReads) CartByCustomer(ctx context.Context, customerID uuid.UUID) (*shared.CartSnapshot, error) {
	if r.cartStore == nil {
		r.cartStore = readstore.NewCartReadStore(r.dbtx)
	}

	record, err := r.cartStore.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.CartSnapshot{
		ID:         record.ID,
		CustomerID: record.CustomerID,
		Items:      make([]shared.CartItemSnapshot, len(record.Lines)),
	}
	for i, l := range record.Lines {
		snapshot.Items[i] = shared.CartItemSnapshot{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return snapshot, nil
}

func (r *commandReads) OffersFor(ctx context.Context, customerID *uuid.UUID, groupID *uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]pricing.Offers, error) {
	if r.pricingStore == nil {
		r.pricingStore = readstore.NewPricingReadStore(r.dbtx)
	}
	return r.pricingStore.OffersFor(ctx, customerID, groupID, productIDs)
}

func (r *commandReads) GroupPriceBaseline(ctx context.Context, pairs []pricing.OverrideKey) ([]pricing.OverrideChange, error) {
	if r.groupPriceStore == nil {
		r.groupPriceStore = readstore.NewGroupPriceReadStore(r.dbtx)
	}
	return r.groupPriceStore.Baseline(ctx, pairs)
}

func (r *commandReads) OrderState(ctx context.Context, orderID uuid.UUID) (*shared.OrderStateSnapshot, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.dbtx)
	}

	id, status, placedAt, err := r.orderStore.FindState(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &shared.OrderStateSnapshot{
		ID:       id,
		Status:   status,
		PlacedAt: placedAt,
	}, nil
}
