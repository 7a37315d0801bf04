package activity

import (
	"time"
)

// ActivityLog records a user-visible action against an entity. Rows are
// written best-effort by the async activity logger; nothing reads them on
// the hot path.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	EntityType string    `gorm:"type:varchar(50);not null" json:"entity_type"`
	EntityID   uint      `gorm:"not null" json:"entity_id"`
	Action     string    `gorm:"type:text;not null" json:"action"`
	IPAddress  *string   `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	Timestamp  time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName sets the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
