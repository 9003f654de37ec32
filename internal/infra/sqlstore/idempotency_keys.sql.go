package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const idempotencyColumns = `key, account_id, endpoint, request_hash, status, result_id, created_at, expires_at`

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (` + idempotencyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (key, account_id) DO NOTHING`

// TryInsertIdempotencyKey reports whether the row was inserted.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg IdempotencyKeys) (bool, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key, arg.AccountID, arg.Endpoint, arg.RequestHash, arg.Status, arg.ResultID, arg.CreatedAt, arg.ExpiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

const getIdempotencyKeyForUpdate = `
SELECT ` + idempotencyColumns + `
FROM idempotency_keys WHERE key = $1 AND account_id = $2
FOR UPDATE`

func (q *Queries) GetIdempotencyKeyForUpdate(ctx context.Context, db DBTX, key string, accountID uuid.UUID) (IdempotencyKeys, error) {
	var k IdempotencyKeys
	err := db.QueryRow(ctx, getIdempotencyKeyForUpdate, key, accountID).Scan(
		&k.Key, &k.AccountID, &k.Endpoint, &k.RequestHash, &k.Status, &k.ResultID, &k.CreatedAt, &k.ExpiresAt)
	return k, err
}

const replaceIdempotencyKey = `
UPDATE idempotency_keys
SET endpoint = $3, request_hash = $4, status = $5, result_id = NULL, created_at = $6, expires_at = $7
WHERE key = $1 AND account_id = $2`

func (q *Queries) ReplaceIdempotencyKey(ctx context.Context, db DBTX, arg IdempotencyKeys) error {
	_, err := db.Exec(ctx, replaceIdempotencyKey,
		arg.Key, arg.AccountID, arg.Endpoint, arg.RequestHash, arg.Status, arg.CreatedAt, arg.ExpiresAt)
	return err
}

const completeIdempotencyKey = `
UPDATE idempotency_keys SET status = 'completed', result_id = $3
WHERE key = $1 AND account_id = $2`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, key string, accountID, resultID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, completeIdempotencyKey, key, accountID, resultID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at <= $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
