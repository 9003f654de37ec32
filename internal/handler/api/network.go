package api

import (
	"net/http"

	"spotlight-ledger/internal/domain/network"

	"github.com/gin-gonic/gin"
)

type NetworkHandler struct{}

func NewNetworkHandler() *NetworkHandler {
	return &NetworkHandler{}
}

// @Summary List transfer networks
// @Description Networks accepted for deposits and withdrawals, with the deposit address to display
// @Tags networks
// @Produce json
// @Success 200 {array} network.Info
// @Router /api/networks [get]
func (h *NetworkHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, network.All())
}
