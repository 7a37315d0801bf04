package logger

import (
	"fmt"

	activityModel "stagelink/models/activity"

	"gorm.io/gorm"
)

// ActivityEntry is a single activity-log record waiting to be persisted.
type ActivityEntry struct {
	UserID     uint
	EntityType string
	EntityID   uint
	Action     string
	IPAddress  string
}

// ActivityLogger persists activity entries asynchronously through a buffered
// channel. Recording is fire-and-forget: when the buffer is full the entry is
// dropped, and a failed insert never propagates to the request that caused it.
type ActivityLogger struct {
	db      *gorm.DB
	channel chan ActivityEntry
}

func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{
		db:      db,
		channel: make(chan ActivityEntry, 100), // Buffered channel to hold pending entries
	}
}

// ProcessEntries drains the channel and writes rows. Run it in a goroutine.
func (al *ActivityLogger) ProcessEntries() {
	Info("Starting asynchronous activity logger...")

	for entry := range al.channel {
		row := activityModel.ActivityLog{
			UserID:     entry.UserID,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Action:     entry.Action,
		}
		if entry.IPAddress != "" {
			ip := entry.IPAddress
			row.IPAddress = &ip
		}

		if err := al.db.Create(&row).Error; err != nil {
			Error(fmt.Sprintf("Failed to insert activity log entry %s/%d", entry.EntityType, entry.EntityID), err)
		}
	}
}

// Record pushes an entry into the channel without blocking the caller.
func (al *ActivityLogger) Record(userID uint, entityType string, entityID uint, action string) {
	select {
	case al.channel <- ActivityEntry{UserID: userID, EntityType: entityType, EntityID: entityID, Action: action}:
	default:
		Warning(fmt.Sprintf("Activity log buffer full, dropping entry %s/%d", entityType, entityID))
	}
}

// RecordWithIP is Record with the client address attached.
func (al *ActivityLogger) RecordWithIP(userID uint, entityType string, entityID uint, action, ip string) {
	select {
	case al.channel <- ActivityEntry{UserID: userID, EntityType: entityType, EntityID: entityID, Action: action, IPAddress: ip}:
	default:
		Warning(fmt.Sprintf("Activity log buffer full, dropping entry %s/%d", entityType, entityID))
	}
}
