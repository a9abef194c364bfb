package aggregate

import (
	"testing"

	"github.com/seafarelabs/portside/internal/preference/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenue_OnlyPaidBookingsContribute(t *testing.T) {
	bookings := []domain.Booking{
		{TotalCost: 100, Status: domain.StatusPaid},
		{TotalCost: 250, Status: domain.StatusPending},
		{TotalCost: 75, Status: domain.StatusCancelled},
		{TotalCost: 40, Status: domain.StatusPaid},
	}

	summary := Revenue(bookings)

	assert.InDelta(t, 140, summary.TotalRevenue, 1e-6)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 4, summary.TotalBookings)
}

func TestRevenue_NoPaidBookings(t *testing.T) {
	bookings := []domain.Booking{
		{TotalCost: 500, Status: domain.StatusPending},
		{TotalCost: 900, Status: domain.StatusCancelled},
	}

	summary := Revenue(bookings)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.PaidCount)
	assert.Equal(t, 2, summary.TotalBookings)
}

func TestInventory_MainSlotsWeightedByDays(t *testing.T) {
	meals := []domain.MealBooking{
		{MealType: "Vegan", MainMeals: []string{"breakfast", "lunch"}, Days: 5},
	}

	summary := Inventory(meals)

	require.Len(t, summary.Buckets, 1)
	bucket := summary.Buckets[0]
	assert.Equal(t, "Vegan", bucket.MealType)
	assert.Equal(t, 1, bucket.PassengerCount)
	assert.Equal(t, 5, bucket.Breakdown["breakfast"])
	assert.Equal(t, 5, bucket.Breakdown["lunch"])
	assert.Equal(t, 0, bucket.Breakdown["dinner"])
}

func TestInventory_TeaAggregatedGlobally(t *testing.T) {
	meals := []domain.MealBooking{
		{MealType: "Vegan", TeaTimes: []string{"morning_tea"}, Days: 3},
		{MealType: "Standard", TeaTimes: []string{"morning_tea", "evening_tea"}, Days: 2},
	}

	summary := Inventory(meals)

	assert.Equal(t, 5, summary.Tea.Morning)
	assert.Equal(t, 2, summary.Tea.Evening)
	assert.Equal(t, 7, summary.Tea.Total)

	// Tea slots never leak into the per-type breakdown.
	for _, bucket := range summary.Buckets {
		assert.NotContains(t, bucket.Breakdown, "morning_tea")
		assert.NotContains(t, bucket.Breakdown, "evening_tea")
	}
}

func TestInventory_GroupOrderFollowsFirstAppearance(t *testing.T) {
	meals := []domain.MealBooking{
		{MealType: "Standard"},
		{MealType: "Vegan"},
		{MealType: "Standard"},
	}

	summary := Inventory(meals)

	require.Len(t, summary.Buckets, 2)
	assert.Equal(t, "Standard", summary.Buckets[0].MealType)
	assert.Equal(t, 2, summary.Buckets[0].PassengerCount)
	assert.Equal(t, "Vegan", summary.Buckets[1].MealType)
}

func TestInventory_UnknownSlotCountedUnderRawKey(t *testing.T) {
	meals := []domain.MealBooking{
		{MealType: "Standard", MainMeals: []string{"brunch"}, Days: 4},
	}

	summary := Inventory(meals)

	require.Len(t, summary.Buckets, 1)
	assert.Equal(t, 4, summary.Buckets[0].Breakdown["brunch"])
}

func TestRollup(t *testing.T) {
	type row struct {
		Ship    string
		Revenue float64
	}
	rows := []row{
		{"Meridian", 100},
		{"Aurora", 50},
		{"Meridian", 25},
	}

	buckets := Rollup(rows,
		func(r row) string { return r.Ship },
		func(r row) float64 { return r.Revenue },
	)

	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "Meridian", Total: 125, Count: 2}, buckets[0])
	assert.Equal(t, Bucket{Key: "Aurora", Total: 50, Count: 1}, buckets[1])
}

func TestFacilityRevenue(t *testing.T) {
	bookings := []domain.Booking{
		{LineItems: []domain.LineItem{
			{DisplayLabel: "Spa & Wellness", TotalCost: 100},
			{DisplayLabel: "Casino", TotalCost: 25},
		}},
		{LineItems: []domain.LineItem{
			{DisplayLabel: "Spa & Wellness", TotalCost: 50},
		}},
	}

	buckets := FacilityRevenue(bookings)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Spa & Wellness", buckets[0].Key)
	assert.InDelta(t, 150, buckets[0].Total, 1e-6)
}

func TestCabinPerformance_ZeroBookingsAverageNotApplicable(t *testing.T) {
	rows := []CabinStat{
		{CabinType: "Suite", BookingsCount: 4, Revenue: 1000},
		{CabinType: "Interior", BookingsCount: 0, Revenue: 0},
	}

	buckets := CabinPerformance(rows)

	require.Len(t, buckets, 2)
	require.NotNil(t, buckets[0].Average)
	assert.InDelta(t, 250, *buckets[0].Average, 1e-6)
	assert.Nil(t, buckets[1].Average)
}
