package domain

import "strings"

// Status is the booking payment status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// ParseStatus normalizes a raw status value, defaulting to pending.
func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPaid:
		return StatusPaid
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// RawFacilityDetail is one server-computed line of the authoritative breakdown.
type RawFacilityDetail struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// RawFacilityPreference is the backend payload for one facility booking. It may
// carry either the authoritative FacilityDetails breakdown or the legacy
// flag/quantity maps; never both are trusted.
type RawFacilityPreference struct {
	PassengerName      string              `json:"passenger_name"`
	BookingID          string              `json:"booking_id"`
	FacilityDetails    []RawFacilityDetail `json:"facility_details,omitempty"`
	SelectedFacilities map[string]bool     `json:"selected_facilities,omitempty"`
	Quantities         map[string]int      `json:"quantities,omitempty"`
	TotalCost          float64             `json:"total_cost"`
	PaymentStatus      string              `json:"payment_status"`
	Status             string              `json:"status"`
}

// RawMealPreference is the backend payload for one meal booking.
type RawMealPreference struct {
	PassengerName string   `json:"passenger_name"`
	BookingID     string   `json:"booking_id"`
	MealType      string   `json:"meal_type"`
	MainMeals     []string `json:"main_meals"`
	TeaTimes      []string `json:"tea_times"`
	Days          int      `json:"days"`
	Notes         string   `json:"notes"`
}

// LineItem is one priced facility entry within a normalized booking.
type LineItem struct {
	FacilityCode  string  `json:"facility_code"`
	DisplayLabel  string  `json:"display_label"`
	QuantityLabel string  `json:"quantity_label"`
	UnitCost      float64 `json:"unit_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// Booking is the canonical facility booking shape. ID is a sequence number
// assigned at normalization time and is stable only within one pass.
type Booking struct {
	ID            int        `json:"id"`
	PassengerName string     `json:"passenger_name"`
	BookingID     string     `json:"booking_id"`
	LineItems     []LineItem `json:"line_items"`
	TotalCost     float64    `json:"total_cost"`
	Status        Status     `json:"status"`
}

// FacilityLabels returns the display labels of all line items, in order.
func (b Booking) FacilityLabels() []string {
	labels := make([]string, 0, len(b.LineItems))
	for _, item := range b.LineItems {
		labels = append(labels, item.DisplayLabel)
	}
	return labels
}

// MealBooking is the canonical meal booking shape.
type MealBooking struct {
	ID            int      `json:"id"`
	PassengerName string   `json:"passenger_name"`
	BookingID     string   `json:"booking_id"`
	MealType      string   `json:"meal_type"`
	MainMeals     []string `json:"main_meals"`
	MainLabels    []string `json:"main_labels"`
	TeaTimes      []string `json:"tea_times"`
	TeaLabels     []string `json:"tea_labels"`
	Days          int      `json:"days"`
	Notes         string   `json:"notes,omitempty"`
}

// MealTimeLabels returns every slot label of the booking, mains then teas.
func (m MealBooking) MealTimeLabels() []string {
	labels := make([]string, 0, len(m.MainLabels)+len(m.TeaLabels))
	labels = append(labels, m.MainLabels...)
	labels = append(labels, m.TeaLabels...)
	return labels
}

// Normalizer converts raw backend records into the canonical booking shapes.
// All methods are pure; the returned int counts are legacy-path facility codes
// dropped for missing catalog entries.
type Normalizer interface {
	NormalizeFacility(raw RawFacilityPreference, seq int) (Booking, int)
	NormalizeFacilityCollection(raws []RawFacilityPreference) ([]Booking, int)
	NormalizeMeal(raw RawMealPreference, seq int) MealBooking
	NormalizeMealCollection(raws []RawMealPreference) []MealBooking
}
