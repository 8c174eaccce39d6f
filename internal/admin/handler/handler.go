// Package handler provides HTTP handlers for admin endpoints.
// All routes here sit behind the basic-auth middleware.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/admin/service"
	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
)

// Handler handles HTTP requests for admin endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new admin handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// UpsertTournament handles POST /admin/tournaments request.
func (h *Handler) UpsertTournament(c *gin.Context) {
	var req tournamentModel.UpsertTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpsertTournament(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error upserting tournament", "year", req.Year, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTournament handles DELETE /admin/tournaments/:year request.
func (h *Handler) DeleteTournament(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "year must be an integer", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTournament(c.Request.Context(), year); err != nil {
		if errors.Is(err, tournamentModel.ErrTournamentNotFound) {
			notFoundResponse(c, "Tournament not found")
			return
		}
		h.logger.Errorw("error deleting tournament", "year", year, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted"})
}

// UpsertGolfer handles POST /admin/golfers request.
func (h *Handler) UpsertGolfer(c *gin.Context) {
	var req golferModel.UpsertGolferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpsertGolfer(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error upserting golfer", "name", req.Name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReloadData handles POST /admin/reload-data request.
func (h *Handler) ReloadData(c *gin.Context) {
	message, err := h.service.ReloadData(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrDataFileNotFound) {
			notFoundResponse(c, "data file not found")
			return
		}
		h.logger.Errorw("error reloading data", "error", err)
		errorResponse(c, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ExportData handles GET /admin/export-data request.
func (h *Handler) ExportData(c *gin.Context) {
	resp, err := h.service.ExportData(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error exporting data", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLogs handles GET /admin/logs request.
func (h *Handler) GetLogs(c *gin.Context) {
	resp, err := h.service.RecentLogs(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing admin logs", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
