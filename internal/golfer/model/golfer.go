package model

import (
	"time"

	"gorm.io/gorm"
)

// Golfer represents a player biography.
// Matches the golfers table schema; at most one row per name.
type Golfer struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement"             json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Bio         string    `gorm:"column:bio;type:text"                           json:"bio"`
	TotalMajors int       `gorm:"column:total_majors;default:0"                  json:"total_majors"`
	TurnedPro   *int      `gorm:"column:turned_pro"                              json:"turned_pro"`
	Nationality string    `gorm:"column:nationality;type:varchar(255)"           json:"nationality"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                     json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                     json:"-"`
}

// TableName specifies the table name for GORM.
func (Golfer) TableName() string {
	return "golfers"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (g *Golfer) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}
