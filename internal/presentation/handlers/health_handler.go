package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports the number of live dashboard sessions
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler handles health check requests
type HealthHandler struct {
	sessions SessionCounter
	history  string
}

// NewHealthHandler creates a new health handler. history names the fetch history backend.
func NewHealthHandler(sessions SessionCounter, history string) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		history:  history,
	}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Message: "Service is running",
		History: h.history,
	}
	if h.sessions != nil {
		if n, err := h.sessions.Count(c.Request.Context()); err == nil {
			resp.Sessions = n
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Sessions int    `json:"sessions"`
	History  string `json:"history,omitempty"`
}
