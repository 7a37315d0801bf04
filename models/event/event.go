package event

import (
	"time"

	"stagelink/models/artist"
	"stagelink/models/user"
	"stagelink/models/venue"

	"github.com/shopspring/decimal"
)

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (es EventStatus) IsValid() bool {
	switch es {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	default:
		return false
	}
}

// Event is a performance published from an accepted booking request.
type Event struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ArtistID uint          `gorm:"not null;index" json:"artist_id"`
	Artist   artist.Artist `gorm:"foreignKey:ArtistID" json:"artist"`
	VenueID  *uint         `gorm:"index" json:"venue_id,omitempty"`
	Venue    *venue.Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	EventDate   time.Time  `gorm:"not null;index" json:"event_date"`
	DoorTime    *time.Time `json:"door_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`

	Status EventStatus `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`

	TicketPrice    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"ticket_price,omitempty"`
	TicketCapacity *int             `json:"ticket_capacity,omitempty"`
	TicketsSold    int              `gorm:"default:0" json:"tickets_sold"`

	Genres     user.StringList `gorm:"type:json" json:"genres,omitempty"`
	CoverImage *string         `gorm:"type:text" json:"cover_image,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
