package negotiation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingModel "stagelink/models/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory BookingStore with the same conditional-update
// semantics as the SQL implementation.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*bookingModel.BookingRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rows: make(map[uint]*bookingModel.BookingRequest)}
}

func (s *fakeStore) Create(_ context.Context, b *bookingModel.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	s.rows[b.ID] = &clone
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id uint) (*bookingModel.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *fakeStore) ListByArtist(_ context.Context, artistID uint) ([]bookingModel.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookingModel.BookingRequest
	for _, row := range s.rows {
		if row.ArtistID == artistID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *fakeStore) ListByVenue(_ context.Context, venueID uint) ([]bookingModel.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookingModel.BookingRequest
	for _, row := range s.rows {
		if row.VenueID == venueID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *fakeStore) ApplyTransition(_ context.Context, id uint, changes map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.Status != bookingModel.BookingStatusPending {
		return false, nil
	}
	for column, value := range changes {
		switch column {
		case "status":
			row.Status = value.(bookingModel.BookingStatus)
		case "counter_offer_fee":
			fee := value.(decimal.Decimal)
			row.CounterOfferFee = &fee
		case "counter_offer_message":
			msg := value.(string)
			row.CounterOfferMessage = &msg
		case "updated_at":
			row.UpdatedAt = value.(time.Time)
		}
	}
	return true, nil
}

// fakeDirectory maps profile ids straight to owner user ids.
type fakeDirectory struct {
	artistOwners map[uint]uint
	venueOwners  map[uint]uint
}

func (d *fakeDirectory) ArtistOwner(_ context.Context, artistID uint) (uint, error) {
	owner, ok := d.artistOwners[artistID]
	if !ok {
		return 0, ErrNotFound
	}
	return owner, nil
}

func (d *fakeDirectory) VenueOwner(_ context.Context, venueID uint) (uint, error) {
	owner, ok := d.venueOwners[venueID]
	if !ok {
		return 0, ErrNotFound
	}
	return owner, nil
}

type recordedActivity struct {
	UserID     uint
	EntityType string
	EntityID   uint
	Action     string
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (r *fakeRecorder) Record(userID uint, entityType string, entityID uint, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, recordedActivity{userID, entityType, entityID, action})
}

const (
	artistID    = uint(1)
	venueID     = uint(2)
	artistUser  = uint(10)
	venueUser   = uint(20)
	strangerUID = uint(99)
)

func newTestService() (*Service, *fakeStore, *fakeRecorder) {
	store := newFakeStore()
	dir := &fakeDirectory{
		artistOwners: map[uint]uint{artistID: artistUser},
		venueOwners:  map[uint]uint{venueID: venueUser},
	}
	recorder := &fakeRecorder{}
	return NewService(store, dir, recorder), store, recorder
}

func validParams() CreateParams {
	return CreateParams{
		ArtistID:     artistID,
		VenueID:      venueID,
		ProposedDate: time.Now().Add(48 * time.Hour),
	}
}

func TestCreateStartsPending(t *testing.T) {
	svc, _, recorder := newTestService()

	fee := decimal.NewFromInt(500)
	msg := "We'd love to play your room."
	p := validParams()
	p.ProposedFee = &fee
	p.Message = &msg

	req, err := svc.Create(context.Background(), artistUser, p)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingStatusPending, req.Status)
	assert.True(t, req.ProposedFee.Equal(fee))
	assert.Nil(t, req.CounterOfferFee)
	assert.Nil(t, req.CounterOfferMessage)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "created booking request", recorder.entries[0].Action)
}

func TestCreateRejectsPastDate(t *testing.T) {
	svc, _, _ := newTestService()

	p := validParams()
	p.ProposedDate = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), artistUser, p)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	svc, _, _ := newTestService()

	p := validParams()
	end := p.ProposedDate.Add(-30 * time.Minute)
	p.ProposedEndDate = &end

	_, err := svc.Create(context.Background(), artistUser, p)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsNegativeFee(t *testing.T) {
	svc, _, _ := newTestService()

	p := validParams()
	fee := decimal.NewFromInt(-100)
	p.ProposedFee = &fee

	_, err := svc.Create(context.Background(), artistUser, p)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsUnknownVenue(t *testing.T) {
	svc, _, _ := newTestService()

	p := validParams()
	p.VenueID = 777

	_, err := svc.Create(context.Background(), artistUser, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRejectsThirdParty(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), strangerUID, validParams())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestVenueOwnerCanCreate(t *testing.T) {
	svc, _, _ := newTestService()

	req, err := svc.Create(context.Background(), venueUser, validParams())
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusPending, req.Status)
}

func mustCreate(t *testing.T, svc *Service) *bookingModel.BookingRequest {
	t.Helper()
	req, err := svc.Create(context.Background(), artistUser, validParams())
	require.NoError(t, err)
	return req
}

func TestAcceptMovesToAccepted(t *testing.T) {
	svc, _, recorder := newTestService()
	req := mustCreate(t, svc)

	updated, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionAccept, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusAccepted, updated.Status)

	require.Len(t, recorder.entries, 2)
	assert.Equal(t, "accepted booking request", recorder.entries[1].Action)
}

func TestRejectMovesToRejected(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	updated, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionReject, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusRejected, updated.Status)
}

func TestCounterOfferStaysPending(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	fee := decimal.NewFromInt(400)
	updated, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionCounterOffer, &fee, nil)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingStatusPending, updated.Status)
	require.NotNil(t, updated.CounterOfferFee)
	assert.True(t, updated.CounterOfferFee.Equal(fee))
}

func TestCounterOfferOverwritesPrevious(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	firstFee := decimal.NewFromInt(400)
	firstMsg := "Can you do 400?"
	_, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionCounterOffer, &firstFee, &firstMsg)
	require.NoError(t, err)

	secondFee := decimal.NewFromInt(450)
	updated, err := svc.Respond(context.Background(), req.ID, artistUser, bookingModel.ActionCounterOffer, &secondFee, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.CounterOfferFee)
	assert.True(t, updated.CounterOfferFee.Equal(secondFee))
	// Message is untouched when the new counter carries only a fee.
	require.NotNil(t, updated.CounterOfferMessage)
	assert.Equal(t, firstMsg, *updated.CounterOfferMessage)
}

func TestEmptyCounterOfferFails(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	_, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionCounterOffer, nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNegativeCounterOfferFeeFails(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	fee := decimal.NewFromInt(-50)
	_, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionCounterOffer, &fee, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvalidActionFails(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	_, err := svc.Respond(context.Background(), req.ID, venueUser, "cancel", nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRespondOnProcessedRequestFails(t *testing.T) {
	svc, store, _ := newTestService()
	req := mustCreate(t, svc)

	_, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionAccept, nil, nil)
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), req.ID, artistUser, bookingModel.ActionReject, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidState)

	// The stored status is unchanged by the losing action.
	current, err := store.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusAccepted, current.Status)
}

func TestRespondByThirdPartyFails(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	_, err := svc.Respond(context.Background(), req.ID, strangerUID, bookingModel.ActionAccept, nil, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRespondOnMissingRequestFails(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Respond(context.Background(), 404, venueUser, bookingModel.ActionAccept, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptAfterCounterOfferKeepsCounterFields(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	fee := decimal.NewFromInt(400)
	_, err := svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionCounterOffer, &fee, nil)
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), req.ID, artistUser, bookingModel.ActionAccept, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingStatusAccepted, updated.Status)
	require.NotNil(t, updated.CounterOfferFee)
	assert.True(t, updated.CounterOfferFee.Equal(fee))
}

func TestConcurrentAcceptRejectHasOneWinner(t *testing.T) {
	svc, store, _ := newTestService()
	req := mustCreate(t, svc)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.Respond(context.Background(), req.ID, venueUser, bookingModel.ActionAccept, nil, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.Respond(context.Background(), req.ID, artistUser, bookingModel.ActionReject, nil, nil)
	}()
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrInvalidState)
		}
	}
	assert.Equal(t, 1, winners)

	current, err := store.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.True(t, current.Status.IsTerminal())
}

func TestGetEnforcesPartyCheck(t *testing.T) {
	svc, _, _ := newTestService()
	req := mustCreate(t, svc)

	got, err := svc.Get(context.Background(), req.ID, artistUser)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)

	got, err = svc.Get(context.Background(), req.ID, venueUser)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)

	_, err = svc.Get(context.Background(), req.ID, strangerUID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListFiltersByParty(t *testing.T) {
	svc, _, _ := newTestService()
	mustCreate(t, svc)
	mustCreate(t, svc)

	forArtist, err := svc.ListForArtist(context.Background(), artistID)
	require.NoError(t, err)
	assert.Len(t, forArtist, 2)

	forVenue, err := svc.ListForVenue(context.Background(), venueID)
	require.NoError(t, err)
	assert.Len(t, forVenue, 2)

	forOther, err := svc.ListForArtist(context.Background(), 555)
	require.NoError(t, err)
	assert.Empty(t, forOther)
}

func TestErrorTaxonomyIsDistinct(t *testing.T) {
	taxonomy := []error{ErrValidation, ErrNotFound, ErrForbidden, ErrInvalidState}
	for i, a := range taxonomy {
		for j, b := range taxonomy {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
