package booking

import (
	"fmt"
	"time"

	bookingModel "stagelink/models/booking"

	"github.com/shopspring/decimal"
)

// BookingCreateRequest is the payload for opening a booking request.
// Dates are RFC 3339 timestamps.
type BookingCreateRequest struct {
	ArtistID        uint             `json:"artist_id" validate:"required,min=1"`
	VenueID         uint             `json:"venue_id" validate:"required,min=1"`
	ProposedDate    time.Time        `json:"proposed_date" validate:"required"`
	ProposedEndDate *time.Time       `json:"proposed_end_date,omitempty"`
	ProposedFee     *decimal.Decimal `json:"proposed_fee,omitempty"`
	Message         *string          `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// BookingActionRequest is the payload for responding to a pending request.
type BookingActionRequest struct {
	Action              string           `json:"action" validate:"required,oneof=accept reject counter_offer"`
	CounterOfferFee     *decimal.Decimal `json:"counter_offer_fee,omitempty"`
	CounterOfferMessage *string          `json:"counter_offer_message,omitempty" validate:"omitempty,max=2000"`
}

// PitchSuggestRequest asks the assistant to draft a booking message.
type PitchSuggestRequest struct {
	ArtistID     uint             `json:"artist_id" validate:"required,min=1"`
	VenueID      uint             `json:"venue_id" validate:"required,min=1"`
	ProposedDate *time.Time       `json:"proposed_date,omitempty"`
	ProposedFee  *decimal.Decimal `json:"proposed_fee,omitempty"`
}

func (b BookingCreateRequest) Validate() error {
	if b.ArtistID == 0 {
		return fmt.Errorf("artist_id is required")
	}
	if b.VenueID == 0 {
		return fmt.Errorf("venue_id is required")
	}
	if b.ProposedDate.IsZero() {
		return fmt.Errorf("proposed_date is required")
	}
	if b.ProposedEndDate != nil && !b.ProposedEndDate.After(b.ProposedDate) {
		return fmt.Errorf("proposed_end_date must be after proposed_date")
	}
	if b.ProposedFee != nil && b.ProposedFee.IsNegative() {
		return fmt.Errorf("proposed_fee cannot be negative")
	}
	return nil
}

func (b BookingActionRequest) Validate() error {
	if !bookingModel.IsValidAction(b.Action) {
		return fmt.Errorf("action must be accept, reject, or counter_offer")
	}
	if b.Action == bookingModel.ActionCounterOffer && b.CounterOfferFee == nil && b.CounterOfferMessage == nil {
		return fmt.Errorf("counter offer must include fee or message")
	}
	if b.CounterOfferFee != nil && b.CounterOfferFee.IsNegative() {
		return fmt.Errorf("counter_offer_fee cannot be negative")
	}
	return nil
}

func (p PitchSuggestRequest) Validate() error {
	if p.ArtistID == 0 {
		return fmt.Errorf("artist_id is required")
	}
	if p.VenueID == 0 {
		return fmt.Errorf("venue_id is required")
	}
	return nil
}
