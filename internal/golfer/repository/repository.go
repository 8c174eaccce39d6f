// Package repository provides data access layer for the golfer module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/golfer/model"
)

// Repository defines the interface for golfer data access operations.
type Repository interface {
	// List returns all golfers ordered by name ascending.
	List(ctx context.Context) ([]model.Golfer, error)

	// GetByName finds the golfer with an exact name.
	GetByName(ctx context.Context, name string) (*model.Golfer, error)

	// Create inserts a new golfer row.
	Create(ctx context.Context, g *model.Golfer) error

	// UpdateByName replaces the mutable fields of the row for a name.
	UpdateByName(ctx context.Context, name string, g *model.Golfer) error

	// DeleteAll removes every golfer row.
	DeleteAll(ctx context.Context) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new golfer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all golfers ordered by name ascending.
func (r *repository) List(ctx context.Context) ([]model.Golfer, error) {
	var golfers []model.Golfer
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&golfers).Error
	if err != nil {
		return nil, err
	}
	return golfers, nil
}

// GetByName finds the golfer with an exact name.
func (r *repository) GetByName(ctx context.Context, name string) (*model.Golfer, error) {
	var g model.Golfer
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGolferNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Create inserts a new golfer row.
func (r *repository) Create(ctx context.Context, g *model.Golfer) error {
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	return r.db.WithContext(ctx).Create(g).Error
}

// UpdateByName replaces bio, total_majors, turned_pro and nationality
// for the row keyed by name, refreshing updated_at.
func (r *repository) UpdateByName(ctx context.Context, name string, g *model.Golfer) error {
	return r.db.WithContext(ctx).
		Model(&model.Golfer{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"bio":          g.Bio,
			"total_majors": g.TotalMajors,
			"turned_pro":   g.TurnedPro,
			"nationality":  g.Nationality,
			"updated_at":   time.Now(),
		}).Error
}

// DeleteAll removes every golfer row.
func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Golfer{}).Error
}
