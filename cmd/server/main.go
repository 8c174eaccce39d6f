// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	adminRouter "github.com/212121-ts/masters-tournament-app/internal/admin/router"
	"github.com/212121-ts/masters-tournament-app/internal/config"
	"github.com/212121-ts/masters-tournament-app/internal/database"
	"github.com/212121-ts/masters-tournament-app/internal/database/migrate"
	golferRouter "github.com/212121-ts/masters-tournament-app/internal/golfer/router"
	"github.com/212121-ts/masters-tournament-app/internal/health"
	"github.com/212121-ts/masters-tournament-app/internal/middleware"
	"github.com/212121-ts/masters-tournament-app/internal/seed"
	statsRouter "github.com/212121-ts/masters-tournament-app/internal/stats/router"
	tournamentRouter "github.com/212121-ts/masters-tournament-app/internal/tournament/router"
	pkgLogger "github.com/212121-ts/masters-tournament-app/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := pkgLogger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}

	if cfg.Database.Driver == config.DriverPostgres {
		if err := migrate.Migrate(db); err != nil {
			logger.Fatalw("failed to apply migrations", "error", err)
		}
	} else {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatalw("failed to migrate schema", "error", err)
		}
	}

	if err := seed.IfEmpty(db, cfg.Database.SeedPath, logger); err != nil {
		logger.Fatalw("failed to seed database", "error", err)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	registerRootRoutes(r)

	healthHandler := health.New(db, logger)
	r.GET("/health", healthHandler.Check)

	tournamentRouter.RegisterRoutes(r, db, logger)
	golferRouter.RegisterRoutes(r, db, logger)
	statsRouter.RegisterRoutes(r, db, logger)
	adminRouter.RegisterRoutes(r, db, cfg, logger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Infow("server starting", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalw("server stopped", "error", err)
	}
}

// registerRootRoutes serves the frontend when one is deployed next to
// the binary, and a service descriptor otherwise.
func registerRootRoutes(r *gin.Engine) {
	if _, err := os.Stat("static"); err == nil {
		r.Static("/static", "./static")
	}

	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat("index.html"); err == nil {
			c.File("index.html")
			return
		}
		if _, err := os.Stat("static/index.html"); err == nil {
			c.File("static/index.html")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Masters Tournament API",
			"version": "1.0.0",
			"docs":    "/docs",
			"health":  "/health",
		})
	})
}
