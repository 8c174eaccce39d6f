// Package model provides the append-only audit log entity.
package model

import "time"

// AdminLog records one successful administrative mutation.
// Rows are append-only; nothing updates or deletes them.
type AdminLog struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"       json:"id"`
	Action    string    `gorm:"column:action;type:varchar(64);not null"  json:"action"`
	Details   string    `gorm:"column:details;type:text"                 json:"details"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"          json:"timestamp"`
}

// TableName specifies the table name for GORM.
func (AdminLog) TableName() string {
	return "admin_logs"
}

// Actions recorded in the audit log.
const (
	ActionInsert     = "INSERT"
	ActionUpdate     = "UPDATE"
	ActionDelete     = "DELETE"
	ActionReloadData = "RELOAD_DATA"
	ActionExportData = "EXPORT_DATA"
)
