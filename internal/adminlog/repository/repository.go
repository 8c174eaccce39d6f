// Package repository provides data access layer for the audit log.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/212121-ts/masters-tournament-app/internal/adminlog/model"
)

// recentLimit caps how many entries a log listing returns.
const recentLimit = 100

// Repository defines the interface for audit log data access operations.
type Repository interface {
	// Append records one administrative action.
	Append(ctx context.Context, action, details string) error

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context) ([]model.AdminLog, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new audit log repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Append records one administrative action.
func (r *repository) Append(ctx context.Context, action, details string) error {
	entry := &model.AdminLog{
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// Recent returns up to 100 entries ordered by timestamp descending.
func (r *repository) Recent(ctx context.Context) ([]model.AdminLog, error) {
	var entries []model.AdminLog
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(recentLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.AdminLog{}
	}
	return entries, nil
}
