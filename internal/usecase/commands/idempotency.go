package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyTTL       = 24 * time.Hour
	maxIdempotencyKeyLen = 128
)

// claimIdempotency reserves key for this request inside tx. It returns the
// result of an earlier identical request when there is one.
func claimIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key string,
	accountID uuid.UUID,
	endpoint, requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	if key == "" {
		return nil, nil
	}
	existing, err := tx.Idempotency().Claim(ctx, shared.IdempotencyRecord{
		Key:         key,
		AccountID:   accountID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		CreatedAt:   now,
		ExpiresAt:   now.Add(idempotencyTTL),
	})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if existing.Endpoint != endpoint || existing.RequestHash != requestHash {
		return nil, ErrIdempotencyMismatch
	}
	if existing.Status == shared.IdempotencyCompleted && existing.ResultID != nil {
		return existing.ResultID, nil
	}
	return nil, ErrIdempotencyInProgress
}

func completeIdempotency(ctx context.Context, tx shared.Tx, key string, accountID, resultID uuid.UUID) error {
	if key == "" {
		return nil
	}
	return tx.Idempotency().Complete(ctx, key, accountID, resultID)
}

func validateIdempotencyKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLen {
		return "", errs.Mark(errs.New("idempotency key too long"), ErrInvalidInput)
	}
	return key, nil
}

func requestHash(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
