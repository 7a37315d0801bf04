package booking

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"

	// Completed and cancelled are reached only through the event lifecycle,
	// never by a negotiation action. They absorb all further actions.
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Negotiation actions a party can take on a pending request.
const (
	ActionAccept       = "accept"
	ActionReject       = "reject"
	ActionCounterOffer = "counter_offer"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsPending returns true while the request is still open for negotiation
func (bs BookingStatus) IsPending() bool {
	return bs == BookingStatusPending
}

// IsTerminal returns true once no negotiation action can change the request
func (bs BookingStatus) IsTerminal() bool {
	return bs != BookingStatusPending
}

// IsValidAction reports whether action is a known negotiation action.
func IsValidAction(action string) bool {
	switch action {
	case ActionAccept, ActionReject, ActionCounterOffer:
		return true
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusAccepted,
		BookingStatusRejected,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
