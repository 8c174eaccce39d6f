// Package repository provides data access layer for the statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/stats/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTournamentStatistics returns aggregate statistics over all tournaments.
	GetTournamentStatistics(ctx context.Context) (*model.TournamentStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetTournamentStatistics returns aggregate statistics over all tournaments.
func (r *repository) GetTournamentStatistics(ctx context.Context) (*model.TournamentStatistics, error) {
	r.logger.Debugw("GetTournamentStatistics called")

	var totals struct {
		TotalYears    int64 `gorm:"column:total_years"`
		UniqueWinners int64 `gorm:"column:unique_winners"`
		BestScore     int64 `gorm:"column:best_score"`
	}

	err := r.db.WithContext(ctx).
		Table("tournaments").
		Select(`
			COUNT(*) as total_years,
			COUNT(DISTINCT winner) as unique_winners,
			COALESCE(MIN(score), 0) as best_score
		`).
		Scan(&totals).Error
	if err != nil {
		r.logger.Errorw("GetTournamentStatistics database error", "error", err)
		return nil, err
	}

	var top struct {
		Winner string `gorm:"column:winner"`
		Wins   int64  `gorm:"column:wins"`
	}

	// Ties are broken arbitrarily by the ordering of the scan.
	result := r.db.WithContext(ctx).
		Table("tournaments").
		Select("winner, COUNT(*) as wins").
		Group("winner").
		Order("wins DESC").
		Limit(1).
		Scan(&top)
	if result.Error != nil {
		r.logger.Errorw("GetTournamentStatistics database error", "error", result.Error)
		return nil, result.Error
	}

	stats := &model.TournamentStatistics{
		TotalYears:     int(totals.TotalYears),
		UniqueWinners:  int(totals.UniqueWinners),
		BestScore:      int(totals.BestScore),
		MostWins:       int(top.Wins),
		MostWinsGolfer: top.Winner,
	}

	r.logger.Debugw("GetTournamentStatistics completed", "total_years", stats.TotalYears)
	return stats, nil
}
