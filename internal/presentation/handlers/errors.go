package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/repo"
	"repodash/internal/domain/sidebar"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

var codeStatus = map[string]int{
	repo.CodeInvalidAccount:    http.StatusBadRequest,
	repo.CodeAccountNotFound:   http.StatusNotFound,
	repo.CodeRateLimited:       http.StatusTooManyRequests,
	repo.CodeUpstream:          http.StatusBadGateway,
	repo.CodeInvalidRepository: http.StatusBadGateway,
}

// StatusForCode returns the HTTP status exposed for a domain error code
func StatusForCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError writes the ErrorResponse matching err
func respondError(c *gin.Context, err error) {
	var de *repo.DomainError
	var se *dashboard.SessionError

	switch {
	case errors.As(err, &de):
		c.JSON(StatusForCode(de.Code), ErrorResponse{
			Error:   de.Code,
			Message: de.Message,
		})
	case errors.As(err, &se):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   se.Code,
			Message: se.Message,
		})
	case errors.Is(err, sidebar.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_coordinates",
			Message: "Latitude must be within [-90, 90] and longitude within [-180, 180]",
			Details: err.Error(),
		})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred",
		})
	}
}
