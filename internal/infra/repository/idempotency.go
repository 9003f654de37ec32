package repository

import (
	"context"
	"time"

	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.IdempotencyKeys) (bool, error)
	GetIdempotencyKeyForUpdate(ctx context.Context, db sqlstore.DBTX, key string, accountID uuid.UUID) (sqlstore.IdempotencyKeys, error)
	ReplaceIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.IdempotencyKeys) error
	CompleteIdempotencyKey(ctx context.Context, db sqlstore.DBTX, key string, accountID, resultID uuid.UUID) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlstore.DBTX, now time.Time) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlstore.DBTX
}

func NewIdempotencyRepository(queries IdempotencyQueries, db sqlstore.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries, db: db}
}

// Claim inserts the key or, when it already exists, locks and returns it.
// An expired key is taken over in place.
func (r *IdempotencyRepository) Claim(ctx context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, error) {
	row := sqlstore.IdempotencyKeys{
		Key:         rec.Key,
		AccountID:   rec.AccountID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		Status:      rec.Status,
		ResultID:    pgconv.UUIDPtrToPgtype(rec.ResultID),
		CreatedAt:   rec.CreatedAt,
		ExpiresAt:   rec.ExpiresAt,
	}
	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to try insert idempotency key", err)
	}
	if inserted {
		return nil, nil
	}

	existing, err := r.queries.GetIdempotencyKeyForUpdate(ctx, r.db, rec.Key, rec.AccountID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get idempotency key", err)
	}
	if !existing.ExpiresAt.After(rec.CreatedAt) {
		if err := r.queries.ReplaceIdempotencyKey(ctx, r.db, row); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to replace expired idempotency key", err)
		}
		return nil, nil
	}

	return &shared.IdempotencyRecord{
		Key:         existing.Key,
		AccountID:   existing.AccountID,
		Endpoint:    existing.Endpoint,
		RequestHash: existing.RequestHash,
		Status:      existing.Status,
		ResultID:    pgconv.UUIDPtrFromPgtype(existing.ResultID),
		CreatedAt:   existing.CreatedAt.UTC(),
		ExpiresAt:   existing.ExpiresAt.UTC(),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key string, accountID, resultID uuid.UUID) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, r.db, key, accountID, resultID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update idempotency key status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return nil
}

func (r *IdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, now)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete expired idempotency keys", err)
	}
	return count, nil
}
