package export

import (
	"strings"
	"testing"

	"github.com/seafarelabs/portside/internal/preference/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookings(t *testing.T) {
	bookings := []domain.Booking{
		{
			PassengerName: "Ava Laurent",
			BookingID:     "BK-1001",
			LineItems: []domain.LineItem{
				{DisplayLabel: "Spa & Wellness", QuantityLabel: "2 days", TotalCost: 100},
				{DisplayLabel: "Fitness Center", QuantityLabel: "Free Access", TotalCost: 0},
			},
			TotalCost: 100,
			Status:    domain.StatusPaid,
		},
	}

	out := Bookings(bookings)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Passenger Name,Booking ID,Facilities,Quantities,Costs,Status,Total Cost", lines[0])
	assert.Equal(t, "Ava Laurent,BK-1001,Spa & Wellness; Fitness Center,2 days; Free Access,100.00; 0.00,paid,100.00", lines[1])
}

func TestBookings_EmptyCollection(t *testing.T) {
	out := Bookings(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Passenger Name,"))
}
