package api

import (
	"net/http"

	"spotlight-ledger/internal/domain/withdrawal"
	reqdto "spotlight-ledger/internal/handler/dto/request"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawals commands.WithdrawalCommands
	q           queries.WithdrawalQueries
}

func NewWithdrawalHandler(withdrawals commands.WithdrawalCommands, q queries.WithdrawalQueries) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawals: withdrawals,
		q:           q,
	}
}

// @Summary Request withdrawal
// @Description Debits the caller and records a pending withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first result for repeated requests"
// @Param request body reqdto.CreateWithdrawalRequest true "Withdrawal"
// @Success 201 {object} resdto.WithdrawalResponse
// @Success 200 {object} resdto.WithdrawalResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/withdrawals [post]
func (h *WithdrawalHandler) Create(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req reqdto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput(accountID, c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		abortBadRequest(c, err, "Invalid amount")
		return
	}

	result, err := h.withdrawals.RequestWithdrawal(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(createdStatus(result.IsReplayed), resdto.FromWithdrawalResult(result))
}

// @Summary My withdrawals
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, completed or rejected"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.WithdrawalView]
// @Failure 400 {object} httperr.Response
// @Router /api/withdrawals [get]
func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	params, ok := listParams(c, &accountID)
	if !ok {
		return
	}
	h.list(c, params)
}

// @Summary All withdrawals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, completed or rejected"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.WithdrawalView]
// @Failure 400 {object} httperr.Response
// @Router /api/admin/withdrawals [get]
func (h *WithdrawalHandler) ListAll(c *gin.Context) {
	params, ok := listParams(c, nil)
	if !ok {
		return
	}
	h.list(c, params)
}

func (h *WithdrawalHandler) list(c *gin.Context, params queries.ListParams) {
	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Cancel withdrawal
// @Description The owner withdraws a pending request; the amount is refunded
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} resdto.WithdrawalResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/withdrawals/{id}/cancel [post]
func (h *WithdrawalHandler) Cancel(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.withdrawals.Cancel(c.Request.Context(), id, accountID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWithdrawalResult(result))
}

// @Summary Resolve withdrawal
// @Description Completes or rejects a pending withdrawal; rejection refunds the amount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Param request body reqdto.ResolveRequest true "completed or rejected"
// @Success 200 {object} resdto.WithdrawalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/withdrawals/{id}/resolve [post]
func (h *WithdrawalHandler) Resolve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	decision, err := withdrawal.ParseDecision(req.Status)
	if err != nil {
		abortBadRequest(c, err, "Invalid status")
		return
	}

	result, err := h.withdrawals.Resolve(c.Request.Context(), id, decision)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWithdrawalResult(result))
}
