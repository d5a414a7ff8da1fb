package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"repodash/internal/application/dto"
)

// DashboardService is the set of session use cases the handler drives
type DashboardService interface {
	CreateSession(ctx context.Context) (*dto.DashboardViewResponse, error)
	GetView(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error)
	SubmitAccount(ctx context.Context, sessionID, account string) (*dto.DashboardViewResponse, error)
	SetSearch(ctx context.Context, sessionID, search string) (*dto.DashboardViewResponse, error)
	NextPage(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error)
	PrevPage(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	IssueToken(sessionID string) (string, error)
}

// DashboardHandler handles dashboard session requests
type DashboardHandler struct {
	dashboardService DashboardService
	tokens           TokenIssuer
	sse              *SSEManager
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService DashboardService, tokens TokenIssuer, sse *SSEManager) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		tokens:           tokens,
		sse:              sse,
	}
}

// CreateSession handles POST /dashboard/sessions
// @Summary Open a dashboard session
// @Description Creates a session, loads the default account into it and returns a token bound to the session
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/sessions [post]
func (h *DashboardHandler) CreateSession(c *gin.Context) {
	view, err := h.dashboardService.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.IssueToken(view.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateSessionResponse{
		SessionID: view.SessionID,
		Token:     token,
		View:      view,
	})
}

// GetSession handles GET /dashboard/sessions/:id
// @Summary Get the current view of a session
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DashboardViewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id} [get]
func (h *DashboardHandler) GetSession(c *gin.Context) {
	view, err := h.dashboardService.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitAccount handles POST /dashboard/sessions/:id/account
// @Summary Submit an account name
// @Description Fetches the account's repositories. Page resets to 1 and the previous list is cleared.
// @Description Input and fetch errors are reported in the view's error fields.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAccountRequest true "Account"
// @Success 200 {object} dto.DashboardViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id}/account [post]
func (h *DashboardHandler) SubmitAccount(c *gin.Context) {
	var req dto.SubmitAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	view, err := h.dashboardService.SubmitAccount(c.Request.Context(), c.Param("id"), req.Account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetSearch handles PUT /dashboard/sessions/:id/search
// @Summary Change the filter text
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Param request body dto.SetSearchRequest true "Search text"
// @Success 200 {object} dto.DashboardViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id}/search [put]
func (h *DashboardHandler) SetSearch(c *gin.Context) {
	var req dto.SetSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	view, err := h.dashboardService.SetSearch(c.Request.Context(), c.Param("id"), req.Search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// NextPage handles POST /dashboard/sessions/:id/next
// @Summary Go to the next page
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DashboardViewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id}/next [post]
func (h *DashboardHandler) NextPage(c *gin.Context) {
	view, err := h.dashboardService.NextPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PrevPage handles POST /dashboard/sessions/:id/prev
// @Summary Go to the previous page
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DashboardViewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id}/prev [post]
func (h *DashboardHandler) PrevPage(c *gin.Context) {
	view, err := h.dashboardService.PrevPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CloseSession handles DELETE /dashboard/sessions/:id
// @Summary Close a session
// @Tags Dashboard
// @Security SessionAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id} [delete]
func (h *DashboardHandler) CloseSession(c *gin.Context) {
	if err := h.dashboardService.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
