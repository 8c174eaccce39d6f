// Package service provides business logic layer for the admin module.
//
// Every successful mutation appends one entry to the audit log. Failed
// credential checks never reach this layer; they are rejected by the
// auth middleware.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	adminlogModel "github.com/212121-ts/masters-tournament-app/internal/adminlog/model"
	adminlogRepository "github.com/212121-ts/masters-tournament-app/internal/adminlog/repository"
	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	golferRepository "github.com/212121-ts/masters-tournament-app/internal/golfer/repository"
	"github.com/212121-ts/masters-tournament-app/internal/seed"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
	tournamentRepository "github.com/212121-ts/masters-tournament-app/internal/tournament/repository"
)

// ErrDataFileNotFound indicates that the external data file is absent.
var ErrDataFileNotFound = errors.New("data file not found")

// Service defines the interface for admin mutations.
type Service interface {
	// UpsertTournament inserts or replaces the tournament for a year.
	UpsertTournament(ctx context.Context, req *tournamentModel.UpsertTournamentRequest) (*tournamentModel.TournamentResponse, error)

	// UpsertGolfer inserts or replaces the golfer for a name.
	UpsertGolfer(ctx context.Context, req *golferModel.UpsertGolferRequest) (*golferModel.GolferResponse, error)

	// DeleteTournament removes the tournament for a year.
	DeleteTournament(ctx context.Context, year int) error

	// ReloadData clears both tables and re-seeds from the data file.
	ReloadData(ctx context.Context) (string, error)

	// ExportData serializes all rows into the data file shape.
	ExportData(ctx context.Context) (*seed.File, error)

	// RecentLogs returns the most recent audit entries, newest first.
	RecentLogs(ctx context.Context) ([]adminlogModel.AdminLog, error)
}

type service struct {
	db          *gorm.DB
	tournaments tournamentRepository.Repository
	golfers     golferRepository.Repository
	logs        adminlogRepository.Repository
	seedPath    string
	logger      *zap.SugaredLogger
}

// New creates a new admin service instance.
func New(
	db *gorm.DB,
	tournaments tournamentRepository.Repository,
	golfers golferRepository.Repository,
	logs adminlogRepository.Repository,
	seedPath string,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		db:          db,
		tournaments: tournaments,
		golfers:     golfers,
		logs:        logs,
		seedPath:    seedPath,
		logger:      logger,
	}
}

// UpsertTournament inserts or replaces the tournament keyed by year,
// logging action INSERT or UPDATE with the submitted fields.
func (s *service) UpsertTournament(ctx context.Context, req *tournamentModel.UpsertTournamentRequest) (*tournamentModel.TournamentResponse, error) {
	action := adminlogModel.ActionUpdate

	_, err := s.tournaments.GetByYear(ctx, req.Year)
	if errors.Is(err, tournamentModel.ErrTournamentNotFound) {
		action = adminlogModel.ActionInsert
		t := &tournamentModel.Tournament{
			Year:        req.Year,
			Winner:      req.Winner,
			Score:       req.Score,
			ToPar:       req.ToPar,
			Nationality: req.Nationality,
		}
		if err := s.tournaments.Create(ctx, t); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		t := &tournamentModel.Tournament{
			Winner:      req.Winner,
			Score:       req.Score,
			ToPar:       req.ToPar,
			Nationality: req.Nationality,
		}
		if err := s.tournaments.UpdateByYear(ctx, req.Year, t); err != nil {
			return nil, err
		}
	}

	// Re-read so the response carries the stored id and timestamps.
	stored, err := s.tournaments.GetByYear(ctx, req.Year)
	if err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("Tournament %d: %s (%d, %d)", req.Year, req.Winner, req.Score, req.ToPar)
	if err := s.logs.Append(ctx, action, detail); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	s.logger.Infow("tournament upserted", "action", action, "year", req.Year, "winner", req.Winner)
	return tournamentModel.ToResponse(stored), nil
}

// UpsertGolfer inserts or replaces the golfer keyed by name, logging
// action INSERT or UPDATE and recomputing the derived wins sequence.
func (s *service) UpsertGolfer(ctx context.Context, req *golferModel.UpsertGolferRequest) (*golferModel.GolferResponse, error) {
	action := adminlogModel.ActionUpdate

	_, err := s.golfers.GetByName(ctx, req.Name)
	if errors.Is(err, golferModel.ErrGolferNotFound) {
		action = adminlogModel.ActionInsert
		g := &golferModel.Golfer{
			Name:        req.Name,
			Bio:         req.Bio,
			TotalMajors: req.TotalMajors,
			TurnedPro:   req.TurnedPro,
			Nationality: req.Nationality,
		}
		if err := s.golfers.Create(ctx, g); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		g := &golferModel.Golfer{
			Bio:         req.Bio,
			TotalMajors: req.TotalMajors,
			TurnedPro:   req.TurnedPro,
			Nationality: req.Nationality,
		}
		if err := s.golfers.UpdateByName(ctx, req.Name, g); err != nil {
			return nil, err
		}
	}

	stored, err := s.golfers.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	wins, err := s.tournaments.WinYears(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.logs.Append(ctx, action, fmt.Sprintf("Golfer %s", req.Name)); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	s.logger.Infow("golfer upserted", "action", action, "name", req.Name)
	return golferModel.ToResponse(stored, wins), nil
}

// DeleteTournament removes the tournament keyed by year, logging the
// former winner. A missing year fails with NotFound and logs nothing.
func (s *service) DeleteTournament(ctx context.Context, year int) error {
	existing, err := s.tournaments.GetByYear(ctx, year)
	if err != nil {
		return err
	}

	if err := s.tournaments.DeleteByYear(ctx, year); err != nil {
		return err
	}

	detail := fmt.Sprintf("Tournament %d: %s removed", year, existing.Winner)
	if err := s.logs.Append(ctx, adminlogModel.ActionDelete, detail); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	s.logger.Infow("tournament deleted", "year", year, "winner", existing.Winner)
	return nil
}

// ReloadData clears both tables and re-seeds from the data file.
// A missing file fails with NotFound; anything after that surfaces as
// an internal error carrying the cause.
func (s *service) ReloadData(ctx context.Context) (string, error) {
	if _, err := os.Stat(s.seedPath); err != nil {
		return "", ErrDataFileNotFound
	}

	if err := s.tournaments.DeleteAll(ctx); err != nil {
		return "", fmt.Errorf("failed to clear tournaments: %w", err)
	}
	if err := s.golfers.DeleteAll(ctx); err != nil {
		return "", fmt.Errorf("failed to clear golfers: %w", err)
	}

	if err := seed.FromFile(s.db, s.seedPath, s.logger); err != nil {
		return "", fmt.Errorf("failed to reload data: %w", err)
	}

	name := filepath.Base(s.seedPath)
	detail := fmt.Sprintf("Reloaded all data from %s", name)
	if err := s.logs.Append(ctx, adminlogModel.ActionReloadData, detail); err != nil {
		return "", fmt.Errorf("failed to record audit entry: %w", err)
	}

	s.logger.Infow("data reloaded", "path", s.seedPath)
	return fmt.Sprintf("Data successfully reloaded from %s", name), nil
}

// ExportData serializes all tournament and golfer rows (without
// surrogate ids and timestamps) into the data file shape.
func (s *service) ExportData(ctx context.Context) (*seed.File, error) {
	tournaments, err := s.tournaments.List(ctx)
	if err != nil {
		return nil, err
	}

	golfers, err := s.golfers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &seed.File{
		Tournaments: make([]seed.TournamentRecord, 0, len(tournaments)),
		Golfers:     make([]seed.GolferRecord, 0, len(golfers)),
	}
	for _, t := range tournaments {
		out.Tournaments = append(out.Tournaments, seed.TournamentRecord{
			Year:        t.Year,
			Winner:      t.Winner,
			Score:       t.Score,
			ToPar:       t.ToPar,
			Nationality: t.Nationality,
		})
	}
	for _, g := range golfers {
		out.Golfers = append(out.Golfers, seed.GolferRecord{
			Name:        g.Name,
			Bio:         g.Bio,
			TotalMajors: g.TotalMajors,
			TurnedPro:   g.TurnedPro,
			Nationality: g.Nationality,
		})
	}

	detail := fmt.Sprintf("Exported %d tournaments and %d golfers", len(out.Tournaments), len(out.Golfers))
	if err := s.logs.Append(ctx, adminlogModel.ActionExportData, detail); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	return out, nil
}

// RecentLogs returns the most recent audit entries, newest first.
func (s *service) RecentLogs(ctx context.Context) ([]adminlogModel.AdminLog, error) {
	return s.logs.Recent(ctx)
}
