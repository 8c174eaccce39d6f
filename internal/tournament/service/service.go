// Package service provides business logic layer for the tournament module.
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/tournament/model"
	"github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
)

// Service defines the interface for tournament read operations.
type Service interface {
	// List returns all tournament results, newest year first.
	List(ctx context.Context) ([]model.TournamentResponse, error)

	// GetByYear returns the tournament result for an exact year.
	GetByYear(ctx context.Context, year int) (*model.TournamentResponse, error)

	// Search interprets a free-text token: an integer is an exact year
	// match, anything else a substring match against winner names.
	Search(ctx context.Context, query string) ([]model.TournamentResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new tournament service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all tournament results, newest year first.
func (s *service) List(ctx context.Context) ([]model.TournamentResponse, error) {
	tournaments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToResponseList(tournaments), nil
}

// GetByYear returns the tournament result for an exact year.
func (s *service) GetByYear(ctx context.Context, year int) (*model.TournamentResponse, error) {
	t, err := s.repo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(t), nil
}

// Search interprets a free-text token. Non-numeric input never errors;
// it falls through to the winner substring match.
func (s *service) Search(ctx context.Context, query string) ([]model.TournamentResponse, error) {
	var (
		tournaments []model.Tournament
		err         error
	)

	if year, convErr := strconv.Atoi(query); convErr == nil {
		tournaments, err = s.repo.SearchByYear(ctx, year)
	} else {
		tournaments, err = s.repo.SearchByWinner(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	return model.ToResponseList(tournaments), nil
}
