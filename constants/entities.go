package constants

// Entity type names used in activity log rows.
const (
	EntityUser           = "user"
	EntityArtist         = "artist"
	EntityVenue          = "venue"
	EntityBookingRequest = "booking_request"
	EntityEvent          = "event"
)

// SessionCookie is the cookie that carries the session token when no
// Authorization header is present.
const SessionCookie = "session"
