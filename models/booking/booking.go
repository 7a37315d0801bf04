package booking

import (
	"time"

	"stagelink/models/artist"
	"stagelink/models/venue"

	"github.com/shopspring/decimal"
)

// BookingRequest is a proposal for an artist to perform at a venue on a
// specific date. The (ArtistID, VenueID) pair is immutable after creation,
// and Status only moves along the transitions owned by the negotiation
// service. Terminal rows are kept for history, never deleted.
type BookingRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign keys for the two parties
	ArtistID uint          `gorm:"not null;index" json:"artist_id"`
	Artist   artist.Artist `gorm:"foreignKey:ArtistID" json:"artist"`
	VenueID  uint          `gorm:"not null;index" json:"venue_id"`
	Venue    venue.Venue   `gorm:"foreignKey:VenueID" json:"venue"`

	ProposedDate    time.Time        `gorm:"not null" json:"proposed_date"`
	ProposedEndDate *time.Time       `json:"proposed_end_date,omitempty"`
	ProposedFee     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"proposed_fee,omitempty"`
	Message         *string          `gorm:"type:text" json:"message,omitempty"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`

	// Set only by the counter_offer transition while Status is pending.
	// Each counter offer overwrites the previous one.
	CounterOfferFee     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"counter_offer_fee,omitempty"`
	CounterOfferMessage *string          `gorm:"type:text" json:"counter_offer_message,omitempty"`

	// Back-link populated once an accepted booking is converted into an event.
	EventID *uint `gorm:"index" json:"event_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the BookingRequest model
func (BookingRequest) TableName() string {
	return "booking_requests"
}
