package api

import (
	"net/http"
	"strconv"

	reqdto "spotlight-ledger/internal/handler/dto/request"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultUpcoming = 5

type ScheduleHandler struct {
	q queries.ScheduleQueries
}

func NewScheduleHandler(q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{q: q}
}

// @Summary Schedule snapshot
// @Description Active coins with their windows, waiting coins in activation order, and the next rotation events
// @Tags schedule
// @Produce json
// @Param at query string false "RFC3339 instant (default now)"
// @Param upcoming query int false "Number of upcoming events (default 5, max 100)"
// @Success 200 {object} queries.ScheduleSnapshot
// @Failure 400 {object} httperr.Response
// @Router /api/schedule [get]
func (h *ScheduleHandler) Snapshot(c *gin.Context) {
	at, ok := queryTime(c, "at")
	if !ok {
		return
	}
	upcoming := defaultUpcoming
	if v := c.Query("upcoming"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			abortBadRequest(c, err, "Invalid upcoming")
			return
		}
		upcoming = n
	}

	snap, err := h.q.Snapshot(at, upcoming)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Coin status
// @Description Whether a coin is active at an instant, its window, or its next activation
// @Tags schedule
// @Produce json
// @Param coinId path int true "Coin ID"
// @Param at query string false "RFC3339 instant (default now)"
// @Success 200 {object} queries.CoinStatusView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/schedule/coins/{coinId} [get]
func (h *ScheduleHandler) CoinStatus(c *gin.Context) {
	coinID, err := strconv.Atoi(c.Param("coinId"))
	if err != nil {
		abortBadRequest(c, err, "Invalid coinId")
		return
	}
	at, ok := queryTime(c, "at")
	if !ok {
		return
	}

	view, err := h.q.CoinStatus(coinID, at)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Preview a rotation schedule
// @Description Runs the generator on an ad hoc configuration; the live schedule is untouched
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewRequest true "Schedule configuration"
// @Success 200 {object} schedule.Result
// @Failure 400 {object} httperr.Response
// @Router /api/schedule/preview [post]
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.q.Preview(req.ToConfig())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
