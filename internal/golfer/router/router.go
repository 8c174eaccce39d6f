// Package router provides golfer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/golfer/handler"
	"github.com/212121-ts/masters-tournament-app/internal/golfer/repository"
	"github.com/212121-ts/masters-tournament-app/internal/golfer/service"
	tournamentRepository "github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
)

// RegisterRoutes registers golfer module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	tournaments := tournamentRepository.New(db, logger)
	svc := service.New(repo, tournaments, logger)
	h := handler.New(svc, logger)

	r.GET("/golfers", h.List)
	r.GET("/golfers/:name", h.GetByName)
}
