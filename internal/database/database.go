// Package database provides database connection management.
//
// The service stores its records in an embedded SQLite file by default;
// PostgreSQL is available for deployments that already run one
// (DB_DRIVER=postgres).
package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	adminlogModel "github.com/212121-ts/masters-tournament-app/internal/adminlog/model"
	"github.com/212121-ts/masters-tournament-app/internal/config"
	"github.com/212121-ts/masters-tournament-app/internal/database/pool"
	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
	"github.com/212121-ts/masters-tournament-app/pkg/retry"
)

// New creates a database connection for the configured driver.
func New(ctx context.Context, cfg config.DatabaseConfig, logger *zap.SugaredLogger) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return newPostgres(ctx, cfg, logger)
	default:
		return newSQLite(cfg, logger)
	}
}

// newSQLite opens the SQLite database file, creating it if absent.
func newSQLite(cfg config.DatabaseConfig, logger *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
	}
	logger.Infow("database opened", "driver", config.DriverSQLite, "path", cfg.Path)
	return db, nil
}

// newPostgres connects to PostgreSQL, retrying with backoff while the
// server starts up.
func newPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.SugaredLogger) (*gorm.DB, error) {
	dsn := cfg.BuildDSN()

	db, err := retry.DoWithResult(ctx, retry.PostgresConfig(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, cfg.SanitizeError(err)
	}

	if err := pool.SetupConnectionPool(db, pool.DefaultPoolConfig()); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	logger.Infow("database opened", "driver", config.DriverPostgres, "host", cfg.Host, "dbname", cfg.DBName)
	return db, nil
}

// AutoMigrate creates the tournaments, golfers and admin_logs tables if absent.
// Used on the SQLite path; postgres deployments run SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.AutoMigrate(
		&tournamentModel.Tournament{},
		&golferModel.Golfer{},
		&adminlogModel.AdminLog{},
	)
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
