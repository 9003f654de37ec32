package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"spotlight-ledger/internal/infra/repository"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/pkg/pgconv"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlstore.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlstore.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: every balance change is a guarded single-row UPDATE.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
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

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

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
			if attempt == maxRetries && pgconv.IsRetryable(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		metrics.TxRetries.Inc()

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
	return pgconv.IsRetryable(err) && attempt < maxRetries
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
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlstore.DBTX
	q    *sqlstore.Queries

	// Lazy-initialized repositories
	accountRepo     shared.AccountRepository
	entryRepo       shared.EntryRepository
	allocationRepo  shared.AllocationRepository
	withdrawalRepo  shared.WithdrawalRepository
	depositRepo     shared.DepositRepository
	idempotencyRepo shared.IdempotencyRepository
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository(t.q, t.dbtx)
	}
	return t.accountRepo
}

func (t *pgTx) Entries() shared.EntryRepository {
	if t.entryRepo == nil {
		t.entryRepo = repository.NewEntryRepository(t.q, t.dbtx)
	}
	return t.entryRepo
}

func (t *pgTx) Allocations() shared.AllocationRepository {
	if t.allocationRepo == nil {
		t.allocationRepo = repository.NewAllocationRepository(t.q, t.dbtx)
	}
	return t.allocationRepo
}

func (t *pgTx) Withdrawals() shared.WithdrawalRepository {
	if t.withdrawalRepo == nil {
		t.withdrawalRepo = repository.NewWithdrawalRepository(t.q, t.dbtx)
	}
	return t.withdrawalRepo
}

func (t *pgTx) Deposits() shared.DepositRepository {
	if t.depositRepo == nil {
		t.depositRepo = repository.NewDepositRepository(t.q, t.dbtx)
	}
	return t.depositRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q, t.dbtx)
	}
	return t.idempotencyRepo
}
