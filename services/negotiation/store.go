package negotiation

import (
	"context"
	"errors"
	"fmt"

	artistModel "stagelink/models/artist"
	bookingModel "stagelink/models/booking"
	venueModel "stagelink/models/venue"

	"gorm.io/gorm"
)

// GormBookingStore is the GORM-backed BookingStore.
type GormBookingStore struct {
	DB *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{DB: db}
}

func (s *GormBookingStore) Create(ctx context.Context, b *bookingModel.BookingRequest) error {
	return s.DB.WithContext(ctx).Create(b).Error
}

func (s *GormBookingStore) GetByID(ctx context.Context, id uint) (*bookingModel.BookingRequest, error) {
	var req bookingModel.BookingRequest
	err := s.DB.WithContext(ctx).
		Preload("Artist").Preload("Artist.User").
		Preload("Venue").Preload("Venue.User").
		First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking request %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &req, nil
}

func (s *GormBookingStore) ListByArtist(ctx context.Context, artistID uint) ([]bookingModel.BookingRequest, error) {
	var reqs []bookingModel.BookingRequest
	err := s.DB.WithContext(ctx).
		Preload("Venue").Preload("Venue.User").
		Where("artist_id = ?", artistID).
		Order("created_at").
		Find(&reqs).Error
	return reqs, err
}

func (s *GormBookingStore) ListByVenue(ctx context.Context, venueID uint) ([]bookingModel.BookingRequest, error) {
	var reqs []bookingModel.BookingRequest
	err := s.DB.WithContext(ctx).
		Preload("Artist").Preload("Artist.User").
		Where("venue_id = ?", venueID).
		Order("created_at").
		Find(&reqs).Error
	return reqs, err
}

// ApplyTransition performs the optimistic check-then-set: the UPDATE is
// scoped by both id and the pending status, so a row that was concurrently
// moved out of pending matches nothing and RowsAffected stays zero.
func (s *GormBookingStore) ApplyTransition(ctx context.Context, id uint, changes map[string]interface{}) (bool, error) {
	res := s.DB.WithContext(ctx).
		Model(&bookingModel.BookingRequest{}).
		Where("id = ? AND status = ?", id, bookingModel.BookingStatusPending).
		Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GormProfileDirectory resolves profile owners straight from the artist and
// venue tables.
type GormProfileDirectory struct {
	DB *gorm.DB
}

func NewGormProfileDirectory(db *gorm.DB) *GormProfileDirectory {
	return &GormProfileDirectory{DB: db}
}

func (d *GormProfileDirectory) ArtistOwner(ctx context.Context, artistID uint) (uint, error) {
	var a artistModel.Artist
	err := d.DB.WithContext(ctx).Select("id", "user_id").First(&a, artistID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
		}
		return 0, err
	}
	return a.UserID, nil
}

func (d *GormProfileDirectory) VenueOwner(ctx context.Context, venueID uint) (uint, error) {
	var v venueModel.Venue
	err := d.DB.WithContext(ctx).Select("id", "user_id").First(&v, venueID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
		}
		return 0, err
	}
	return v.UserID, nil
}
