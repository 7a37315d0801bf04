package venue

import (
	"fmt"
	"strings"
)

// VenueProfileUpdateRequest is the payload for editing a venue profile.
type VenueProfileUpdateRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Address      string   `json:"address" validate:"required,min=1"`
	City         string   `json:"city" validate:"required,min=1,max=100"`
	State        *string  `json:"state,omitempty" validate:"omitempty,max=50"`
	Country      string   `json:"country" validate:"required,min=1,max=50"`
	PostalCode   *string  `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Capacity     int      `json:"capacity" validate:"required,min=1"`
	Amenities    []string `json:"amenities,omitempty" validate:"omitempty,max=50,dive,max=100"`
	ContactEmail *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
}

func (r VenueProfileUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(r.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}

// VenueStats backs the venue dashboard counters
type VenueStats struct {
	PendingRequests   int64 `json:"pending_requests"`
	AcceptedThisMonth int64 `json:"accepted_this_month"`
	UpcomingEvents    int64 `json:"upcoming_events"`
}
