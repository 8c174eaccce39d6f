// Package seed provides one-time database seeding and the JSON data
// file format shared by seeding, bulk reload and export.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
)

// TournamentRecord is one tournament in the data file.
type TournamentRecord struct {
	Year        int    `json:"year"`
	Winner      string `json:"winner"`
	Score       int    `json:"score"`
	ToPar       int    `json:"to_par"`
	Nationality string `json:"nationality"`
}

// GolferRecord is one golfer biography in the data file.
type GolferRecord struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	TotalMajors int    `json:"total_majors"`
	TurnedPro   *int   `json:"turned_pro"`
	Nationality string `json:"nationality"`
}

// File is the structured data file shape: the same format is accepted
// by seeding and reload and produced by export, so an exported file
// round-trips through a reload.
type File struct {
	Tournaments []TournamentRecord `json:"tournaments"`
	Golfers     []GolferRecord     `json:"golfers"`
}

// Fallback returns the built-in dataset used when no data file is
// present or the file cannot be loaded.
func Fallback() File {
	pro := func(year int) *int { return &year }
	return File{
		Tournaments: []TournamentRecord{
			{Year: 2024, Winner: "Scottie Scheffler", Score: 277, ToPar: -11, Nationality: "USA"},
			{Year: 2023, Winner: "Jon Rahm", Score: 276, ToPar: -12, Nationality: "ESP"},
			{Year: 2022, Winner: "Scottie Scheffler", Score: 278, ToPar: -10, Nationality: "USA"},
			{Year: 2021, Winner: "Hideki Matsuyama", Score: 278, ToPar: -10, Nationality: "JPN"},
			{Year: 2020, Winner: "Dustin Johnson", Score: 268, ToPar: -20, Nationality: "USA"},
		},
		Golfers: []GolferRecord{
			{
				Name:        "Scottie Scheffler",
				Bio:         "Scottie Scheffler has emerged as one of golf's brightest stars.",
				TotalMajors: 2,
				TurnedPro:   pro(2018),
				Nationality: "USA",
			},
			{
				Name:        "Jon Rahm",
				Bio:         "Jon Rahm is a Spanish professional golfer who captured his first major championship at the 2023 Masters.",
				TotalMajors: 2,
				TurnedPro:   pro(2016),
				Nationality: "ESP",
			},
		},
	}
}

// IfEmpty seeds the store when the tournament table has no rows.
// A readable data file at path is preferred; any failure loading it
// falls back to the built-in dataset without aborting startup.
func IfEmpty(db *gorm.DB, path string, logger *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&tournamentModel.Tournament{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count tournaments: %w", err)
	}

	if count > 0 {
		logger.Infow("seeding skipped, store already populated", "tournaments", count)
		return nil
	}

	if _, err := os.Stat(path); err == nil {
		loadErr := FromFile(db, path, logger)
		if loadErr == nil {
			return nil
		}
		logger.Warnw("data file load failed, falling back to built-in dataset", "path", path, "error", loadErr)
	} else {
		logger.Infow("no data file found, loading built-in dataset", "path", path)
	}

	return Apply(db, Fallback(), logger)
}

// FromFile reads and applies a JSON data file.
func FromFile(db *gorm.DB, path string, logger *zap.SugaredLogger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}

	logger.Infow("data file parsed", "path", path,
		"tournaments", len(f.Tournaments), "golfers", len(f.Golfers))

	return Apply(db, f, logger)
}

// Apply upserts every record by its natural key. Individual record
// failures are logged and skipped rather than aborting the batch.
func Apply(db *gorm.DB, f File, logger *zap.SugaredLogger) error {
	now := time.Now()
	inserted := 0

	for _, rec := range f.Tournaments {
		t := tournamentModel.Tournament{
			Year:        rec.Year,
			Winner:      rec.Winner,
			Score:       rec.Score,
			ToPar:       rec.ToPar,
			Nationality: rec.Nationality,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"winner", "score", "to_par", "nationality", "updated_at"}),
		}).Create(&t).Error
		if err != nil {
			logger.Warnw("skipping tournament record", "year", rec.Year, "error", err)
			continue
		}
		inserted++
	}

	for _, rec := range f.Golfers {
		g := golferModel.Golfer{
			Name:        rec.Name,
			Bio:         rec.Bio,
			TotalMajors: rec.TotalMajors,
			TurnedPro:   rec.TurnedPro,
			Nationality: rec.Nationality,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"bio", "total_majors", "turned_pro", "nationality", "updated_at"}),
		}).Create(&g).Error
		if err != nil {
			logger.Warnw("skipping golfer record", "name", rec.Name, "error", err)
			continue
		}
		inserted++
	}

	logger.Infow("seeding completed", "records", inserted)
	return nil
}
