// Package filterengine applies user-entered criteria over normalized booking
// collections. Filters never mutate their input and preserve relative order.
package filterengine

import (
	"strings"

	"github.com/seafarelabs/portside/internal/preference/domain"
)

// BookingCriteria filters facility bookings. Empty fields pass everything;
// populated fields are ANDed together.
type BookingCriteria struct {
	Passenger string
	BookingID string
	Facility  string
	Status    string
}

// MealCriteria filters meal bookings.
type MealCriteria struct {
	Passenger string
	BookingID string
	MealType  string
	MealTime  string
}

// Apply returns the facility bookings matching every populated criterion.
func Apply(bookings []domain.Booking, c BookingCriteria) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !matchText(b.PassengerName, c.Passenger) {
			continue
		}
		if !matchText(b.BookingID, c.BookingID) {
			continue
		}
		if !matchAny(b.FacilityLabels(), c.Facility) {
			continue
		}
		if !matchEqual(string(b.Status), c.Status) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ApplyMeals returns the meal bookings matching every populated criterion.
func ApplyMeals(meals []domain.MealBooking, c MealCriteria) []domain.MealBooking {
	out := make([]domain.MealBooking, 0, len(meals))
	for _, m := range meals {
		if !matchText(m.PassengerName, c.Passenger) {
			continue
		}
		if !matchText(m.BookingID, c.BookingID) {
			continue
		}
		if !matchEqual(m.MealType, c.MealType) {
			continue
		}
		if !matchAny(m.MealTimeLabels(), c.MealTime) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchText is a case-insensitive substring match; an empty needle passes.
func matchText(value, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

// matchAny passes when any element of the sequence matches the text needle.
func matchAny(values []string, needle string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	for _, value := range values {
		if matchText(value, needle) {
			return true
		}
	}
	return false
}

// matchEqual is an exact equality match; an empty needle passes.
func matchEqual(value, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return value == needle
}
