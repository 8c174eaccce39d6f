// Package router provides tournament module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/tournament/handler"
	"github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
	"github.com/212121-ts/masters-tournament-app/internal/tournament/service"
)

// RegisterRoutes registers tournament module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/tournaments", h.List)
	r.GET("/tournaments/:year", h.GetByYear)
	r.GET("/search", h.Search)
}
