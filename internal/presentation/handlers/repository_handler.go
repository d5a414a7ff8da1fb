package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repodash/internal/application/dto"
)

// RepositoryLister lists one page of an account's original repositories
type RepositoryLister interface {
	ListRepositories(ctx context.Context, account, search string, page int) (*dto.RepositoryListResponse, error)
}

// RepositoryHandler handles stateless repository listing
type RepositoryHandler struct {
	repositoryService RepositoryLister
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService RepositoryLister) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
	}
}

// GetAccountRepositories handles GET /users/:account/repos
// @Summary List an account's original repositories
// @Description Fetches the account's public repositories, drops forks, filters by search and returns one page
// @Tags Repositories
// @Accept json
// @Produce json
// @Param account path string true "GitHub account name"
// @Param search query string false "Case-insensitive text matched against name or description"
// @Param page query int false "Page number" default(1) minimum(1)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /users/{account}/repos [get]
func (h *RepositoryHandler) GetAccountRepositories(c *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}

	resp, err := h.repositoryService.ListRepositories(c.Request.Context(), c.Param("account"), c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
