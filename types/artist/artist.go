package artist

import (
	"fmt"
	"strings"
)

// ArtistProfileUpdateRequest is the payload for editing an artist profile.
// Nil slices/maps leave the stored value untouched.
type ArtistProfileUpdateRequest struct {
	StageName   string            `json:"stage_name" validate:"required,min=1,max=100"`
	Bio         *string           `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Genres      []string          `json:"genres,omitempty" validate:"omitempty,max=20,dive,max=50"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

func (r ArtistProfileUpdateRequest) Validate() error {
	if strings.TrimSpace(r.StageName) == "" {
		return fmt.Errorf("stage_name is required")
	}
	return nil
}

// ArtistStats backs the artist dashboard counters
type ArtistStats struct {
	PendingRequests   int64 `json:"pending_requests"`
	AcceptedThisMonth int64 `json:"accepted_this_month"`
	UpcomingEvents    int64 `json:"upcoming_events"`
}
