// Package service provides business logic layer for the golfer module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	"github.com/212121-ts/masters-tournament-app/internal/golfer/repository"
	tournamentRepository "github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
)

// Service defines the interface for golfer read operations.
type Service interface {
	// List returns all golfers, name ascending, each with derived wins.
	List(ctx context.Context) ([]model.GolferResponse, error)

	// GetByName returns a golfer by exact name, synthesizing a
	// placeholder view for names known only as tournament winners.
	GetByName(ctx context.Context, name string) (*model.GolferResponse, error)
}

type service struct {
	repo        repository.Repository
	tournaments tournamentRepository.Repository
	logger      *zap.SugaredLogger
}

// New creates a new golfer service instance.
func New(repo repository.Repository, tournaments tournamentRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		tournaments: tournaments,
		logger:      logger,
	}
}

// List returns all golfers with their derived Masters wins.
func (s *service) List(ctx context.Context) ([]model.GolferResponse, error) {
	golfers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.GolferResponse, 0, len(golfers))
	for i := range golfers {
		wins, err := s.tournaments.WinYears(ctx, golfers[i].Name)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *model.ToResponse(&golfers[i], wins))
	}

	return responses, nil
}

// GetByName returns a golfer by exact name. A name present only as a
// tournament winner yields a synthesized placeholder; a stored majors
// count of zero is replaced by the win count on this read path.
func (s *service) GetByName(ctx context.Context, name string) (*model.GolferResponse, error) {
	g, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, model.ErrGolferNotFound) {
			return nil, err
		}

		exists, existsErr := s.tournaments.WinnerExists(ctx, name)
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, model.ErrGolferNotFound
		}

		wins, winsErr := s.tournaments.WinYears(ctx, name)
		if winsErr != nil {
			return nil, winsErr
		}
		return model.Placeholder(name, wins), nil
	}

	wins, err := s.tournaments.WinYears(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := model.ToResponse(g, wins)
	if resp.TotalMajors == 0 {
		resp.TotalMajors = len(wins)
	}
	return resp, nil
}
