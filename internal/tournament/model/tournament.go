package model

import (
	"time"

	"gorm.io/gorm"
)

// Tournament represents a single Masters tournament result.
// Matches the tournaments table schema; at most one row per year.
type Tournament struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement"            json:"id"`
	Year        int       `gorm:"column:year;uniqueIndex;not null"              json:"year"`
	Winner      string    `gorm:"column:winner;type:varchar(255);not null"      json:"winner"`
	Score       int       `gorm:"column:score;not null"                         json:"score"`
	ToPar       int       `gorm:"column:to_par;not null"                        json:"to_par"`
	Nationality string    `gorm:"column:nationality;type:varchar(255);not null" json:"nationality"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                    json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                    json:"-"`
}

// TableName specifies the table name for GORM.
func (Tournament) TableName() string {
	return "tournaments"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Tournament) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
