// Package router provides admin module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/admin/handler"
	"github.com/212121-ts/masters-tournament-app/internal/admin/service"
	adminlogRepository "github.com/212121-ts/masters-tournament-app/internal/adminlog/repository"
	"github.com/212121-ts/masters-tournament-app/internal/auth"
	"github.com/212121-ts/masters-tournament-app/internal/config"
	golferRepository "github.com/212121-ts/masters-tournament-app/internal/golfer/repository"
	tournamentRepository "github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
)

// RegisterRoutes registers admin module routes behind the basic-auth gate.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, logger *zap.SugaredLogger) {
	tournaments := tournamentRepository.New(db, logger)
	golfers := golferRepository.New(db, logger)
	logs := adminlogRepository.New(db, logger)
	svc := service.New(db, tournaments, golfers, logs, cfg.Database.SeedPath, logger)
	h := handler.New(svc, logger)

	admin := r.Group("/admin", auth.Basic(cfg.Admin, logger))

	admin.POST("/tournaments", h.UpsertTournament)
	admin.DELETE("/tournaments/:year", h.DeleteTournament)
	admin.POST("/golfers", h.UpsertGolfer)
	admin.POST("/reload-data", h.ReloadData)
	admin.GET("/export-data", h.ExportData)
	admin.GET("/logs", h.GetLogs)
}
