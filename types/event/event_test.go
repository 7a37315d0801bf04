package event

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventFromBookingRequestValidate(t *testing.T) {
	assert.NoError(t, EventFromBookingRequest{Title: "Blues Night"}.Validate())

	assert.Error(t, EventFromBookingRequest{Title: ""}.Validate())
	assert.Error(t, EventFromBookingRequest{Title: "   "}.Validate())

	negativePrice := decimal.NewFromInt(-10)
	assert.Error(t, EventFromBookingRequest{Title: "Blues Night", TicketPrice: &negativePrice}.Validate())

	zeroCapacity := 0
	assert.Error(t, EventFromBookingRequest{Title: "Blues Night", TicketCapacity: &zeroCapacity}.Validate())

	price := decimal.NewFromInt(25)
	capacity := 150
	assert.NoError(t, EventFromBookingRequest{
		Title:          "Blues Night",
		TicketPrice:    &price,
		TicketCapacity: &capacity,
	}.Validate())
}
