package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repodash/internal/application/dto"
)

// SidebarService loads the sidebar widgets
type SidebarService interface {
	GetSidebar(ctx context.Context, latitude, longitude *float64) (*dto.SidebarResponse, error)
	RefreshImage(ctx context.Context) dto.ImageResponse
}

// SidebarHandler handles the weather and image widgets
type SidebarHandler struct {
	sidebarService SidebarService
}

// NewSidebarHandler creates a new sidebar handler
func NewSidebarHandler(sidebarService SidebarService) *SidebarHandler {
	return &SidebarHandler{
		sidebarService: sidebarService,
	}
}

// GetSidebar handles GET /sidebar
// @Summary Get weather and a random dog image
// @Description Weather is null when the weather API fails; the image falls back to a placeholder
// @Tags Sidebar
// @Produce json
// @Param latitude query number false "Latitude" minimum(-90) maximum(90)
// @Param longitude query number false "Longitude" minimum(-180) maximum(180)
// @Success 200 {object} dto.SidebarResponse
// @Failure 400 {object} ErrorResponse
// @Router /sidebar [get]
func (h *SidebarHandler) GetSidebar(c *gin.Context) {
	latitude, ok := floatQuery(c, "latitude")
	if !ok {
		return
	}
	longitude, ok := floatQuery(c, "longitude")
	if !ok {
		return
	}

	resp, err := h.sidebarService.GetSidebar(c.Request.Context(), latitude, longitude)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshImage handles POST /sidebar/image
// @Summary Fetch a new random dog image
// @Tags Sidebar
// @Produce json
// @Success 200 {object} dto.ImageResponse
// @Router /sidebar/image [post]
func (h *SidebarHandler) RefreshImage(c *gin.Context) {
	c.JSON(http.StatusOK, h.sidebarService.RefreshImage(c.Request.Context()))
}

// floatQuery parses an optional float query parameter, writing a 400 when it is malformed
func floatQuery(c *gin.Context, key string) (*float64, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return nil, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: key + " must be a number",
			Details: err.Error(),
		})
		return nil, false
	}
	return &v, true
}
