package filterengine

import (
	"testing"

	"github.com/seafarelabs/portside/internal/preference/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID: 1, PassengerName: "Ava Laurent", BookingID: "BK-1001", Status: domain.StatusPaid,
			LineItems: []domain.LineItem{{DisplayLabel: "Spa & Wellness"}, {DisplayLabel: "Casino"}},
		},
		{
			ID: 2, PassengerName: "Marco Da Silva", BookingID: "BK-1002", Status: domain.StatusPending,
			LineItems: []domain.LineItem{{DisplayLabel: "Fitness Center"}},
		},
		{
			ID: 3, PassengerName: "Noor Haddad", BookingID: "BK-2001", Status: domain.StatusPaid,
			LineItems: []domain.LineItem{{DisplayLabel: "Shore Excursion"}},
		},
	}
}

func TestApply_EmptyCriteriaPassesEverything(t *testing.T) {
	in := sampleBookings()
	out := Apply(in, BookingCriteria{})
	assert.Equal(t, in, out)
}

func TestApply_CaseInsensitiveSubstring(t *testing.T) {
	out := Apply(sampleBookings(), BookingCriteria{Passenger: "da silva"})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)
}

func TestApply_SequenceFieldMatchesAnyElement(t *testing.T) {
	out := Apply(sampleBookings(), BookingCriteria{Facility: "casino"})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}

func TestApply_StatusExactMatch(t *testing.T) {
	out := Apply(sampleBookings(), BookingCriteria{Status: "paid"})
	require.Len(t, out, 2)

	// Substring-of-status must not match.
	out = Apply(sampleBookings(), BookingCriteria{Status: "pai"})
	assert.Empty(t, out)
}

func TestApply_FieldsAreANDed(t *testing.T) {
	out := Apply(sampleBookings(), BookingCriteria{Status: "paid", BookingID: "2001"})
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestApply_PreservesOrderAndIsIdempotent(t *testing.T) {
	in := sampleBookings()
	criteria := BookingCriteria{Status: "paid"}

	once := Apply(in, criteria)
	twice := Apply(once, criteria)

	require.Len(t, once, 2)
	assert.Equal(t, 1, once[0].ID)
	assert.Equal(t, 3, once[1].ID)
	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := sampleBookings()
	_ = Apply(in, BookingCriteria{Passenger: "noor"})
	assert.Equal(t, sampleBookings(), in)
}

func TestApplyMeals(t *testing.T) {
	meals := []domain.MealBooking{
		{ID: 1, PassengerName: "Ava Laurent", MealType: "Vegan", MainLabels: []string{"Breakfast", "Lunch"}, TeaLabels: []string{"Morning Tea"}},
		{ID: 2, PassengerName: "Marco Da Silva", MealType: "Standard", MainLabels: []string{"Dinner"}},
	}

	out := ApplyMeals(meals, MealCriteria{MealType: "Vegan"})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)

	// Meal-time text matches any slot label, mains or teas.
	out = ApplyMeals(meals, MealCriteria{MealTime: "morning"})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)

	// Meal type is an equality matcher.
	out = ApplyMeals(meals, MealCriteria{MealType: "Veg"})
	assert.Empty(t, out)
}
