package seed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&tournamentModel.Tournament{}, &golferModel.Golfer{})
	require.NoError(t, err)

	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func writeDataFile(t *testing.T, f File) string {
	t.Helper()
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "masters_data.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestIfEmpty(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("loads from data file", func(t *testing.T) {
		db := setupTestDB(t)
		path := writeDataFile(t, File{
			Tournaments: []TournamentRecord{
				{Year: 2021, Winner: "Hideki Matsuyama", Score: 278, ToPar: -10, Nationality: "JPN"},
			},
		})

		require.NoError(t, IfEmpty(db, path, logger))

		assert.Equal(t, int64(1), countRows(t, db, &tournamentModel.Tournament{}))
		var stored tournamentModel.Tournament
		require.NoError(t, db.Where("year = ?", 2021).First(&stored).Error)
		assert.Equal(t, "Hideki Matsuyama", stored.Winner)
	})

	t.Run("missing file loads built-in dataset", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, IfEmpty(db, filepath.Join(t.TempDir(), "missing.json"), logger))

		assert.Equal(t, int64(5), countRows(t, db, &tournamentModel.Tournament{}))
		assert.Equal(t, int64(2), countRows(t, db, &golferModel.Golfer{}))

		var stored tournamentModel.Tournament
		require.NoError(t, db.Where("year = ?", 2020).First(&stored).Error)
		assert.Equal(t, "Dustin Johnson", stored.Winner)
		assert.Equal(t, 268, stored.Score)
		assert.Equal(t, -20, stored.ToPar)
	})

	t.Run("unparseable file falls back to built-in dataset", func(t *testing.T) {
		db := setupTestDB(t)
		path := filepath.Join(t.TempDir(), "masters_data.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		require.NoError(t, IfEmpty(db, path, logger))

		assert.Equal(t, int64(5), countRows(t, db, &tournamentModel.Tournament{}))
	})

	t.Run("skips when already populated", func(t *testing.T) {
		db := setupTestDB(t)
		existing := tournamentModel.Tournament{Year: 2019, Winner: "Tiger Woods", Score: 275, ToPar: -13, Nationality: "USA"}
		require.NoError(t, db.Create(&existing).Error)

		require.NoError(t, IfEmpty(db, filepath.Join(t.TempDir(), "missing.json"), logger))

		assert.Equal(t, int64(1), countRows(t, db, &tournamentModel.Tournament{}))
		assert.Equal(t, int64(0), countRows(t, db, &golferModel.Golfer{}))
	})
}

func TestFromFile(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("missing file", func(t *testing.T) {
		db := setupTestDB(t)

		err := FromFile(db, filepath.Join(t.TempDir(), "missing.json"), logger)

		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		db := setupTestDB(t)
		path := filepath.Join(t.TempDir(), "masters_data.json")
		require.NoError(t, os.WriteFile(path, []byte("[1,2,3"), 0o644))

		err := FromFile(db, path, logger)

		assert.Error(t, err)
		assert.Equal(t, int64(0), countRows(t, db, &tournamentModel.Tournament{}))
	})
}

func TestApply(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("upserts by natural key", func(t *testing.T) {
		db := setupTestDB(t)
		existing := tournamentModel.Tournament{Year: 2024, Winner: "Placeholder", Score: 0, ToPar: 0, Nationality: ""}
		require.NoError(t, db.Create(&existing).Error)

		err := Apply(db, File{
			Tournaments: []TournamentRecord{
				{Year: 2024, Winner: "Scottie Scheffler", Score: 277, ToPar: -11, Nationality: "USA"},
				{Year: 2023, Winner: "Jon Rahm", Score: 276, ToPar: -12, Nationality: "ESP"},
			},
		}, logger)

		require.NoError(t, err)
		assert.Equal(t, int64(2), countRows(t, db, &tournamentModel.Tournament{}))

		var stored tournamentModel.Tournament
		require.NoError(t, db.Where("year = ?", 2024).First(&stored).Error)
		assert.Equal(t, "Scottie Scheffler", stored.Winner)
		assert.Equal(t, 277, stored.Score)
	})

	t.Run("golfer records carry turned_pro", func(t *testing.T) {
		db := setupTestDB(t)
		pro := 2016

		err := Apply(db, File{
			Golfers: []GolferRecord{
				{Name: "Jon Rahm", Bio: "Spanish star.", TotalMajors: 2, TurnedPro: &pro, Nationality: "ESP"},
			},
		}, logger)

		require.NoError(t, err)
		var stored golferModel.Golfer
		require.NoError(t, db.Where("name = ?", "Jon Rahm").First(&stored).Error)
		require.NotNil(t, stored.TurnedPro)
		assert.Equal(t, 2016, *stored.TurnedPro)
	})
}
