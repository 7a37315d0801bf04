package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	for _, status := range GetAllBookingStatuses() {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestOnlyPendingIsOpen(t *testing.T) {
	assert.True(t, BookingStatusPending.IsPending())
	assert.False(t, BookingStatusPending.IsTerminal())

	for _, status := range []BookingStatus{
		BookingStatusAccepted,
		BookingStatusRejected,
		BookingStatusCompleted,
		BookingStatusCancelled,
	} {
		assert.False(t, status.IsPending(), "%s should not be pending", status)
		assert.True(t, status.IsTerminal(), "%s should be terminal", status)
	}
}

func TestIsValidAction(t *testing.T) {
	assert.True(t, IsValidAction(ActionAccept))
	assert.True(t, IsValidAction(ActionReject))
	assert.True(t, IsValidAction(ActionCounterOffer))

	assert.False(t, IsValidAction("cancel"))
	assert.False(t, IsValidAction("Accept"))
	assert.False(t, IsValidAction(""))
}
