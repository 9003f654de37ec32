package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/handler/httperr"
	"spotlight-ledger/internal/handler/middleware"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("no authenticated account in context")

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins. Store failures come last so a business rejection that
// also carries a storage mark is still reported as the rejection.
var errorMappings = []errorMapping{
	{commands.ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, "Invalid list filter"},
	{queries.ErrHorizonExceeded, http.StatusBadRequest, "Requested time is beyond the schedule horizon"},
	{schedule.ErrConfiguration, http.StatusBadRequest, "Invalid schedule configuration"},
	{commands.ErrInsufficientFunds, http.StatusUnprocessableEntity, "Insufficient funds"},
	{commands.ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{commands.ErrUnknownCoin, http.StatusNotFound, "Unknown coin"},
	{commands.ErrAllocationNotFound, http.StatusNotFound, "Allocation not found"},
	{commands.ErrWithdrawalNotFound, http.StatusNotFound, "Withdrawal not found"},
	{commands.ErrDepositNotFound, http.StatusNotFound, "Deposit not found"},
	{queries.ErrNotFound, http.StatusNotFound, "Not found"},
	{commands.ErrCoinNotActive, http.StatusConflict, "Coin is not active"},
	{commands.ErrAllocationNotActive, http.StatusConflict, "Allocation is no longer active"},
	{commands.ErrWithdrawalAlreadyResolved, http.StatusConflict, "Withdrawal has already been resolved"},
	{commands.ErrDepositAlreadyResolved, http.StatusConflict, "Deposit has already been resolved"},
	{commands.ErrDuplicateAccount, http.StatusConflict, "Account already exists"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "A request with this idempotency key is still in progress"},
	{commands.ErrIdempotencyMismatch, http.StatusConflict, "Idempotency key was used with a different request"},
	{commands.ErrStorageUnavailable, http.StatusServiceUnavailable, "Storage unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func requireAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// listParams reads ?status=&limit=&cursor=. A malformed limit is a 400, not a silent default.
func listParams(c *gin.Context, accountID *uuid.UUID) (queries.ListParams, bool) {
	p := queries.ListParams{
		AccountID: accountID,
		Status:    c.Query("status"),
		Cursor:    c.Query("cursor"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			abortBadRequest(c, errs.Newf("invalid limit %q", v), "Invalid limit")
			return queries.ListParams{}, false
		}
		p.Limit = n
	}
	return p, true
}

// queryTime reads an optional RFC3339 query parameter; absent means zero.
func queryTime(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return time.Time{}, false
	}
	return t.UTC(), true
}
