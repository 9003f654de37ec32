package api

import (
	"context"
	"net/http"

	"spotlight-ledger/internal/domain/account"
	reqdto "spotlight-ledger/internal/handler/dto/request"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accounts commands.AccountCommands
	ledger   commands.LedgerCommands
	q        queries.AccountQueries
}

func NewAccountHandler(
	accounts commands.AccountCommands,
	ledger commands.LedgerCommands,
	q queries.AccountQueries,
) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		ledger:   ledger,
		q:        q,
	}
}

// @Summary Current account
// @Description Account of the authenticated caller with its current balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AccountView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), accountID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Ledger entries
// @Description Balance movements of the authenticated caller, newest first
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 200)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.EntryView]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/me/entries [get]
func (h *AccountHandler) Entries(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	params, ok := listParams(c, nil)
	if !ok {
		return
	}

	page, err := h.q.Entries(c.Request.Context(), accountID, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Open account
// @Description Creates an account with a zero balance
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenAccountRequest true "Account"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/accounts [post]
func (h *AccountHandler) Open(c *gin.Context) {
	var req reqdto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	acc, err := h.accounts.Open(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccount(acc))
}

// @Summary Credit account
// @Description Manual balance increase recorded with an admin reference
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/accounts/{id}/credit [post]
func (h *AccountHandler) Credit(c *gin.Context) {
	h.adjust(c, h.ledger.Credit)
}

// @Summary Debit account
// @Description Manual balance decrease recorded with an admin reference
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/accounts/{id}/debit [post]
func (h *AccountHandler) Debit(c *gin.Context) {
	h.adjust(c, h.ledger.Debit)
}

type ledgerOp func(ctx context.Context, accountID uuid.UUID, amount account.Money, reference string) (account.Money, error)

func (h *AccountHandler) adjust(c *gin.Context, op ledgerOp) {
	accountID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	amount, err := req.ToMoney()
	if err != nil {
		abortBadRequest(c, err, "Invalid amount")
		return
	}

	balance, err := op(c.Request.Context(), accountID, amount, req.Reference())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BalanceResponse{AccountID: accountID, Balance: balance})
}
