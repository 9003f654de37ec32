package api

import (
	"net/http"

	reqdto "spotlight-ledger/internal/handler/dto/request"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const idempotencyKeyHeader = "Idempotency-Key"

type AllocationHandler struct {
	allocations commands.AllocationCommands
	q           queries.AllocationQueries
}

func NewAllocationHandler(allocations commands.AllocationCommands, q queries.AllocationQueries) *AllocationHandler {
	return &AllocationHandler{
		allocations: allocations,
		q:           q,
	}
}

// @Summary Allocate into a coin
// @Description Debits the caller and opens an allocation that expires with the coin's current active window
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first result for repeated requests"
// @Param request body reqdto.CreateAllocationRequest true "Allocation"
// @Success 201 {object} resdto.AllocationResponse
// @Success 200 {object} resdto.AllocationResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/allocations [post]
func (h *AllocationHandler) Create(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req reqdto.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput(accountID, c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		abortBadRequest(c, err, "Invalid amount")
		return
	}

	result, err := h.allocations.Allocate(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(createdStatus(result.IsReplayed), resdto.FromAllocationResult(result))
}

// @Summary My allocations
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, closed or cancelled"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.AllocationView]
// @Failure 400 {object} httperr.Response
// @Router /api/allocations [get]
func (h *AllocationHandler) ListMine(c *gin.Context) {
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

// @Summary All allocations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, closed or cancelled"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PageResponse[queries.AllocationView]
// @Failure 400 {object} httperr.Response
// @Router /api/admin/allocations [get]
func (h *AllocationHandler) ListAll(c *gin.Context) {
	params, ok := listParams(c, nil)
	if !ok {
		return
	}
	h.list(c, params)
}

func (h *AllocationHandler) list(c *gin.Context, params queries.ListParams) {
	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Cancel allocation
// @Description Cancels an active allocation and refunds its amount
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} resdto.AllocationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/allocations/{id}/cancel [post]
func (h *AllocationHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.allocations.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAllocationResult(result))
}

// @Summary Close allocation
// @Description Closes an active allocation, optionally recording its result percent
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Allocation ID"
// @Param request body reqdto.CloseAllocationRequest false "Result"
// @Success 200 {object} resdto.AllocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/allocations/{id}/close [post]
func (h *AllocationHandler) Close(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CloseAllocationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request format")
			return
		}
	}
	percent, err := req.ToPercent()
	if err != nil {
		abortBadRequest(c, err, "Invalid percent")
		return
	}

	alloc, err := h.allocations.Close(c.Request.Context(), id, percent)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAllocation(alloc))
}

func createdStatus(replayed bool) int {
	if replayed {
		return http.StatusOK
	}
	return http.StatusCreated
}
