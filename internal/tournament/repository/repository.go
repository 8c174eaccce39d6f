// Package repository provides data access layer for the tournament module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/tournament/model"
)

// Repository defines the interface for tournament data access operations.
type Repository interface {
	// List returns all tournaments ordered by year descending.
	List(ctx context.Context) ([]model.Tournament, error)

	// GetByYear finds the tournament for an exact year.
	GetByYear(ctx context.Context, year int) (*model.Tournament, error)

	// SearchByYear returns the tournament(s) matching an exact year.
	SearchByYear(ctx context.Context, year int) ([]model.Tournament, error)

	// SearchByWinner returns tournaments whose winner name contains the
	// query substring, ordered by year descending.
	SearchByWinner(ctx context.Context, query string) ([]model.Tournament, error)

	// Create inserts a new tournament row.
	Create(ctx context.Context, t *model.Tournament) error

	// UpdateByYear replaces the mutable fields of the row for a year.
	UpdateByYear(ctx context.Context, year int, t *model.Tournament) error

	// DeleteByYear removes the row for a year.
	DeleteByYear(ctx context.Context, year int) error

	// DeleteAll removes every tournament row.
	DeleteAll(ctx context.Context) error

	// WinnerExists reports whether a name appears as any tournament winner.
	WinnerExists(ctx context.Context, name string) (bool, error)

	// WinYears returns the years won by a golfer, newest first.
	WinYears(ctx context.Context, name string) ([]int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new tournament repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all tournaments ordered by year descending.
func (r *repository) List(ctx context.Context) ([]model.Tournament, error) {
	var tournaments []model.Tournament
	err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetByYear finds the tournament for an exact year.
func (r *repository) GetByYear(ctx context.Context, year int) (*model.Tournament, error) {
	var t model.Tournament
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

// SearchByYear returns the tournament(s) matching an exact year.
func (r *repository) SearchByYear(ctx context.Context, year int) ([]model.Tournament, error) {
	var tournaments []model.Tournament
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// SearchByWinner returns tournaments whose winner contains the query,
// ordered by year descending. Collation follows the store's LIKE.
func (r *repository) SearchByWinner(ctx context.Context, query string) ([]model.Tournament, error) {
	var tournaments []model.Tournament
	err := r.db.WithContext(ctx).
		Where("winner LIKE ?", "%"+query+"%").
		Order("year DESC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// Create inserts a new tournament row.
func (r *repository) Create(ctx context.Context, t *model.Tournament) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.db.WithContext(ctx).Create(t).Error
}

// UpdateByYear replaces winner, score, to_par and nationality for the
// row keyed by year, refreshing updated_at.
func (r *repository) UpdateByYear(ctx context.Context, year int, t *model.Tournament) error {
	return r.db.WithContext(ctx).
		Model(&model.Tournament{}).
		Where("year = ?", year).
		Updates(map[string]interface{}{
			"winner":      t.Winner,
			"score":       t.Score,
			"to_par":      t.ToPar,
			"nationality": t.Nationality,
			"updated_at":  time.Now(),
		}).Error
}

// DeleteByYear removes the row for a year.
func (r *repository) DeleteByYear(ctx context.Context, year int) error {
	result := r.db.WithContext(ctx).
		Where("year = ?", year).
		Delete(&model.Tournament{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTournamentNotFound
	}
	return nil
}

// DeleteAll removes every tournament row.
func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Tournament{}).Error
}

// WinnerExists reports whether a name appears as any tournament winner.
func (r *repository) WinnerExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Tournament{}).
		Where("winner = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// WinYears returns the years won by a golfer, newest first.
func (r *repository) WinYears(ctx context.Context, name string) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&model.Tournament{}).
		Where("winner = ?", name).
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}
