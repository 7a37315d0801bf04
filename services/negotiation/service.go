package negotiation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagelink/logger"
	bookingModel "stagelink/models/booking"

	"github.com/shopspring/decimal"
)

const entityBookingRequest = "booking_request"

// Service owns the booking negotiation lifecycle: it validates proposals,
// authorizes actors against the two parties, and applies status transitions
// through the store's conditional update.
type Service struct {
	store    BookingStore
	profiles ProfileDirectory
	activity ActivityRecorder
}

// NewService creates a negotiation service over the given ports
func NewService(store BookingStore, profiles ProfileDirectory, activity ActivityRecorder) *Service {
	return &Service{
		store:    store,
		profiles: profiles,
		activity: activity,
	}
}

// CreateParams carries a validated creation intent. ProposedEndDate, fee and
// message are optional.
type CreateParams struct {
	ArtistID        uint
	VenueID         uint
	ProposedDate    time.Time
	ProposedEndDate *time.Time
	ProposedFee     *decimal.Decimal
	Message         *string
}

// Create opens a new pending booking request between an artist and a venue.
// The actor must own one of the two profiles.
func (s *Service) Create(ctx context.Context, actorUserID uint, p CreateParams) (*bookingModel.BookingRequest, error) {
	if p.ArtistID == 0 || p.VenueID == 0 {
		return nil, fmt.Errorf("%w: artist id and venue id are required", ErrValidation)
	}
	if p.ProposedDate.IsZero() {
		return nil, fmt.Errorf("%w: proposed date is required", ErrValidation)
	}
	if !p.ProposedDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: proposed date must be in the future", ErrValidation)
	}
	if p.ProposedEndDate != nil && !p.ProposedEndDate.After(p.ProposedDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if p.ProposedFee != nil && p.ProposedFee.IsNegative() {
		return nil, fmt.Errorf("%w: proposed fee cannot be negative", ErrValidation)
	}

	artistOwner, err := s.profiles.ArtistOwner(ctx, p.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("resolve artist %d: %w", p.ArtistID, err)
	}
	venueOwner, err := s.profiles.VenueOwner(ctx, p.VenueID)
	if err != nil {
		return nil, fmt.Errorf("resolve venue %d: %w", p.VenueID, err)
	}
	if actorUserID != artistOwner && actorUserID != venueOwner {
		return nil, ErrForbidden
	}

	req := &bookingModel.BookingRequest{
		ArtistID:        p.ArtistID,
		VenueID:         p.VenueID,
		ProposedDate:    p.ProposedDate,
		ProposedEndDate: p.ProposedEndDate,
		ProposedFee:     p.ProposedFee,
		Message:         p.Message,
		Status:          bookingModel.BookingStatusPending,
	}

	if err := s.store.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create booking request: %w", err)
	}

	logger.Success(fmt.Sprintf("Booking request %d created (artist %d, venue %d)", req.ID, req.ArtistID, req.VenueID))
	s.activity.Record(actorUserID, entityBookingRequest, req.ID, "created booking request")

	return req, nil
}

// Respond applies a negotiation action to a pending booking request. For a
// counter offer at least one of fee or message must be supplied; the new
// values overwrite any previous counter offer. The write is conditioned on
// the status still being pending, so a lost race surfaces as ErrInvalidState.
func (s *Service) Respond(ctx context.Context, bookingID, actorUserID uint, action string, counterFee *decimal.Decimal, counterMessage *string) (*bookingModel.BookingRequest, error) {
	if !bookingModel.IsValidAction(action) {
		return nil, fmt.Errorf("%w: action must be accept, reject, or counter_offer", ErrValidation)
	}

	req, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking request %d: %w", bookingID, err)
	}

	if err := s.authorizeParty(ctx, req.ArtistID, req.VenueID, actorUserID); err != nil {
		return nil, err
	}

	if !req.Status.IsPending() {
		return nil, ErrInvalidState
	}

	changes := map[string]interface{}{
		"updated_at": time.Now(),
	}

	switch action {
	case bookingModel.ActionAccept:
		changes["status"] = bookingModel.BookingStatusAccepted
	case bookingModel.ActionReject:
		changes["status"] = bookingModel.BookingStatusRejected
	case bookingModel.ActionCounterOffer:
		if counterFee == nil && counterMessage == nil {
			return nil, fmt.Errorf("%w: counter offer must include fee or message", ErrValidation)
		}
		if counterFee != nil && counterFee.IsNegative() {
			return nil, fmt.Errorf("%w: counter offer fee cannot be negative", ErrValidation)
		}
		if counterFee != nil {
			changes["counter_offer_fee"] = *counterFee
		}
		if counterMessage != nil {
			changes["counter_offer_message"] = *counterMessage
		}
	}

	applied, err := s.store.ApplyTransition(ctx, bookingID, changes)
	if err != nil {
		return nil, fmt.Errorf("apply %s to booking request %d: %w", action, bookingID, err)
	}
	if !applied {
		// A concurrent action moved the request out of pending first.
		return nil, ErrInvalidState
	}

	updated, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking request %d: %w", bookingID, err)
	}

	logger.Success(fmt.Sprintf("Booking request %d: %s by user %d", bookingID, action, actorUserID))
	s.activity.Record(actorUserID, entityBookingRequest, bookingID, actionDescription(action))

	return updated, nil
}

// Get returns a booking request if the actor is one of its parties.
func (s *Service) Get(ctx context.Context, bookingID, actorUserID uint) (*bookingModel.BookingRequest, error) {
	req, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking request %d: %w", bookingID, err)
	}
	if err := s.authorizeParty(ctx, req.ArtistID, req.VenueID, actorUserID); err != nil {
		return nil, err
	}
	return req, nil
}

// ListForArtist returns all booking requests where the artist is a party.
func (s *Service) ListForArtist(ctx context.Context, artistID uint) ([]bookingModel.BookingRequest, error) {
	return s.store.ListByArtist(ctx, artistID)
}

// ListForVenue returns all booking requests where the venue is a party.
func (s *Service) ListForVenue(ctx context.Context, venueID uint) ([]bookingModel.BookingRequest, error) {
	return s.store.ListByVenue(ctx, venueID)
}

// authorizeParty rejects any actor who owns neither side of the booking.
func (s *Service) authorizeParty(ctx context.Context, artistID, venueID, actorUserID uint) error {
	artistOwner, err := s.profiles.ArtistOwner(ctx, artistID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("resolve artist %d: %w", artistID, err)
	}
	venueOwner, err := s.profiles.VenueOwner(ctx, venueID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("resolve venue %d: %w", venueID, err)
	}
	if artistOwner != 0 && actorUserID == artistOwner {
		return nil
	}
	if venueOwner != 0 && actorUserID == venueOwner {
		return nil
	}
	return ErrForbidden
}

func actionDescription(action string) string {
	switch action {
	case bookingModel.ActionAccept:
		return "accepted booking request"
	case bookingModel.ActionReject:
		return "rejected booking request"
	default:
		return "sent counter offer"
	}
}
