// Package service provides business logic layer for the statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/stats/model"
	"github.com/212121-ts/masters-tournament-app/internal/stats/repository"
)

// Service defines the interface for statistics operations.
type Service interface {
	// GetTournamentStatistics returns aggregate tournament statistics.
	GetTournamentStatistics(ctx context.Context) (*model.TournamentStatistics, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetTournamentStatistics returns aggregate tournament statistics.
func (s *service) GetTournamentStatistics(ctx context.Context) (*model.TournamentStatistics, error) {
	return s.repo.GetTournamentStatistics(ctx)
}
