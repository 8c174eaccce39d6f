// Package handler provides HTTP handlers for golfer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	"github.com/212121-ts/masters-tournament-app/internal/golfer/service"
)

// Handler handles HTTP requests for golfer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new golfer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /golfers request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing golfers", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByName handles GET /golfers/:name request.
func (h *Handler) GetByName(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrGolferNotFound) {
			notFoundResponse(c, "Golfer not found")
			return
		}
		h.logger.Errorw("error getting golfer", "name", name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
