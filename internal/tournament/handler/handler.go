// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/tournament/model"
	"github.com/212121-ts/masters-tournament-app/internal/tournament/service"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /tournaments request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing tournaments", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByYear handles GET /tournaments/:year request.
func (h *Handler) GetByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "year must be an integer", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetByYear(c.Request.Context(), year)
	if err != nil {
		if errors.Is(err, model.ErrTournamentNotFound) {
			notFoundResponse(c, "Tournament not found")
			return
		}
		h.logger.Errorw("error getting tournament", "year", year, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Search handles GET /search request.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		errorResponse(c, "INVALID_REQUEST", "q parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("error searching tournaments", "query", query, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
