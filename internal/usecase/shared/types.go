package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Percent is the yield figure recorded when an allocation closes.
type Percent = decimal.Decimal

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         string
	AccountID   uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    *uuid.UUID
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
