package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repodash/internal/application/dto"
)

// HistoryLister lists recent fetch outcomes
type HistoryLister interface {
	ListRecent(ctx context.Context, limit int) (*dto.FetchHistoryResponse, error)
}

// HistoryHandler handles fetch history requests
type HistoryHandler struct {
	historyService HistoryLister
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService HistoryLister) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory handles GET /history
// @Summary List recent fetches
// @Tags History
// @Produce json
// @Param limit query int false "Maximum number of records" default(20) minimum(1) maximum(200)
// @Success 200 {object} dto.FetchHistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	limit := 0
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = l
	}

	resp, err := h.historyService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
