package api

import (
	"net/http"

	"spotlight-ledger/internal/domain/deposit"
	reqdto "spotlight-ledger/internal/handler/dto/request"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	deposits commands.DepositCommands
	q        queries.DepositQueries
}

func NewDepositHandler(deposits commands.DepositCommands, q queries.DepositQueries) *DepositHandler {
	return &DepositHandler{
		deposits: deposits,
		q:        q,
	}
}

// @Summary Report a deposit
// @Description Records a pending top-up; the balance changes only when an admin confirms it
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDepositRequest true "Deposit"
// @Success 201 {object} resdto.DepositResponse
// @Failure 400 {object} httperr.Response
// @Router /api/deposits [post]
func (h *DepositHandler) Create(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req reqdto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput(accountID)
	if err != nil {
		abortBadRequest(c, err, "Invalid amount")
		return
	}

	dep, err := h.deposits.Submit(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDeposit(dep))
}

// @Summary My deposits
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or rejected"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.DepositView]
// @Failure 400 {object} httperr.Response
// @Router /api/deposits [get]
func (h *DepositHandler) ListMine(c *gin.Context) {
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

// @Summary All deposits
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or rejected"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.DepositView]
// @Failure 400 {object} httperr.Response
// @Router /api/admin/deposits [get]
func (h *DepositHandler) ListAll(c *gin.Context) {
	params, ok := listParams(c, nil)
	if !ok {
		return
	}
	h.list(c, params)
}

func (h *DepositHandler) list(c *gin.Context, params queries.ListParams) {
	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Resolve deposit
// @Description Confirms (crediting the account) or rejects a pending deposit
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Param request body reqdto.ResolveRequest true "confirmed or rejected"
// @Success 200 {object} resdto.DepositResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/deposits/{id}/resolve [post]
func (h *DepositHandler) Resolve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	decision, err := deposit.ParseDecision(req.Status)
	if err != nil {
		abortBadRequest(c, err, "Invalid status")
		return
	}

	result, err := h.deposits.Resolve(c.Request.Context(), id, decision)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepositResult(result))
}
