package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EventFromBookingRequest is the payload for publishing an event out of an
// accepted booking request.
type EventFromBookingRequest struct {
	Title          string           `json:"title" validate:"required,min=1,max=200"`
	Description    *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	DoorTime       *time.Time       `json:"door_time,omitempty"`
	TicketPrice    *decimal.Decimal `json:"ticket_price,omitempty"`
	TicketCapacity *int             `json:"ticket_capacity,omitempty" validate:"omitempty,min=1"`
	Genres         []string         `json:"genres,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

func (r EventFromBookingRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.TicketPrice != nil && r.TicketPrice.IsNegative() {
		return fmt.Errorf("ticket_price cannot be negative")
	}
	if r.TicketCapacity != nil && *r.TicketCapacity <= 0 {
		return fmt.Errorf("ticket_capacity must be positive")
	}
	return nil
}
