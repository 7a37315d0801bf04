package negotiation

import (
	"context"

	bookingModel "stagelink/models/booking"
)

// BookingStore is the persistence port for booking requests. The store must
// provide conditional-update semantics: ApplyTransition writes only when the
// row is still pending, so two racing transitions resolve to exactly one
// winner.
type BookingStore interface {
	Create(ctx context.Context, b *bookingModel.BookingRequest) error
	GetByID(ctx context.Context, id uint) (*bookingModel.BookingRequest, error)
	ListByArtist(ctx context.Context, artistID uint) ([]bookingModel.BookingRequest, error)
	ListByVenue(ctx context.Context, venueID uint) ([]bookingModel.BookingRequest, error)

	// ApplyTransition updates the row identified by id with the given column
	// changes, conditioned on status still being pending. It reports whether
	// the write happened.
	ApplyTransition(ctx context.Context, id uint, changes map[string]interface{}) (bool, error)
}

// ProfileDirectory resolves the owning user of each party profile.
// Lookups return ErrNotFound when the profile does not exist.
type ProfileDirectory interface {
	ArtistOwner(ctx context.Context, artistID uint) (uint, error)
	VenueOwner(ctx context.Context, venueID uint) (uint, error)
}

// ActivityRecorder is the fire-and-forget activity sink. Implementations must
// never block or fail the calling transition.
type ActivityRecorder interface {
	Record(userID uint, entityType string, entityID uint, action string)
}
