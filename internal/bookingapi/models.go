package bookingapi

import (
	"context"
	"errors"

	"github.com/seafarelabs/portside/internal/preference/domain"
)

// Action is the confirmation flow verb sent to the backend.
type Action string

const (
	ActionConfirm     Action = "confirm"
	ActionSavePending Action = "save_pending"
	ActionCancel      Action = "cancel"
)

// ParseAction validates a raw action value.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionConfirm, ActionSavePending, ActionCancel:
		return Action(raw), nil
	default:
		return "", ErrInvalidAction
	}
}

var (
	ErrInvalidAction    = errors.New("invalid_action")
	ErrBackendRejected  = errors.New("backend_rejected")
	ErrBackendUnreached = errors.New("backend_unreachable")
)

// CardDetails is the opaque card payload forwarded on confirm. Validation is
// the backend's concern.
type CardDetails struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	Expiry      string `json:"expiry"`
	SecurityKey string `json:"security_key"`
}

// BookingSubmission is the outgoing payment/confirmation payload.
type BookingSubmission struct {
	BookingID          string          `json:"booking_id"`
	Action             Action          `json:"action"`
	SelectedFacilities map[string]bool `json:"selected_facilities"`
	Quantities         map[string]int  `json:"quantities"`
	TotalCost          float64         `json:"total_cost"`
	PassengerEmail     string          `json:"passenger_email"`
	PassengerName      string          `json:"passenger_name"`
	CardDetails        *CardDetails    `json:"card_details,omitempty"`
}

// SubmissionResult is the backend's answer to a submission.
type SubmissionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	EmailSent bool   `json:"email_sent,omitempty"`
}

// CabinRevenueRow is one pre-aggregated cabin revenue entry.
type CabinRevenueRow struct {
	CabinType     string  `json:"cabin_type"`
	BookingsCount int     `json:"bookings_count"`
	Revenue       float64 `json:"revenue"`
}

// ServiceRevenueRow is one pre-aggregated facility revenue entry.
type ServiceRevenueRow struct {
	FacilityName string  `json:"facility_name"`
	TotalRevenue float64 `json:"total_revenue"`
}

// MonthlyRevenueRow is one month of revenue.
type MonthlyRevenueRow struct {
	MonthLabel string  `json:"month_label"`
	Revenue    float64 `json:"revenue"`
}

// ShipRevenueRow is one ship's revenue.
type ShipRevenueRow struct {
	ShipName string  `json:"ship_name"`
	Revenue  float64 `json:"revenue"`
}

// TopBookingRow is one high-value booking.
type TopBookingRow struct {
	CustomerName string  `json:"customer_name"`
	ShipName     string  `json:"ship_name"`
	TotalCost    float64 `json:"total_cost"`
}

// RevenueReport is the backend revenue dataset.
type RevenueReport struct {
	TotalRevenue   float64             `json:"total_revenue"`
	CabinRevenue   []CabinRevenueRow   `json:"cabin_revenue"`
	ServiceRevenue []ServiceRevenueRow `json:"services_revenue"`
	MonthlyRevenue []MonthlyRevenueRow `json:"monthly_revenue"`
	ShipRevenue    []ShipRevenueRow    `json:"ship_revenue"`
	TopBookings    []TopBookingRow     `json:"top_bookings"`
}

type facilityPreferencesResponse struct {
	Success     bool                           `json:"success"`
	Preferences []domain.RawFacilityPreference `json:"preferences"`
}

type mealPreferencesResponse struct {
	Success     bool                       `json:"success"`
	Preferences []domain.RawMealPreference `json:"preferences"`
}

type revenueResponse struct {
	Success bool          `json:"success"`
	Data    RevenueReport `json:"data"`
}

// API is the outbound surface of the booking backend.
type API interface {
	FetchFacilityPreferences(ctx context.Context) ([]domain.RawFacilityPreference, error)
	FetchMealPreferences(ctx context.Context) ([]domain.RawMealPreference, error)
	FetchRevenueReport(ctx context.Context) (RevenueReport, error)
	SubmitBooking(ctx context.Context, submission BookingSubmission) (SubmissionResult, error)
}
