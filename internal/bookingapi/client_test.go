package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seafarelabs/portside/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return New(Params{
		Cfg: config.Config{
			BookingAPIBaseURL: baseURL,
			BookingAPITimeout: time.Second,
		},
		Log: zap.NewNop(),
	})
}

func TestFetchFacilityPreferences(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/preferences/facilities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"preferences": [
				{
					"passenger_name": "Ava Laurent",
					"booking_id": "BK-1001",
					"facility_details": [
						{"name": "Spa & Wellness", "quantity": 2, "unit": "days", "unit_price": 50, "total_price": 100}
					],
					"total_cost": 100,
					"payment_status": "paid"
				}
			]
		}`))
	}))
	defer ts.Close()

	prefs, err := newTestClient(ts.URL).FetchFacilityPreferences(context.Background())
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, "Ava Laurent", prefs[0].PassengerName)
	require.Len(t, prefs[0].FacilityDetails, 1)
	assert.Equal(t, "Spa & Wellness", prefs[0].FacilityDetails[0].Name)
	assert.Equal(t, 100.0, prefs[0].FacilityDetails[0].TotalPrice)
}

func TestFetchFacilityPreferences_BackendRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "preferences": []}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchFacilityPreferences(context.Background())
	assert.ErrorIs(t, err, ErrBackendRejected)
}

func TestFetchMealPreferences_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchMealPreferences(context.Background())
	assert.ErrorIs(t, err, ErrBackendRejected)
}

func TestFetchRevenueReport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reports/revenue", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"total_revenue": 1250.5,
				"cabin_revenue": [{"cabin_type": "Suite", "bookings_count": 3, "revenue": 900}],
				"ship_revenue": [{"ship_name": "Meridian", "revenue": 1250.5}]
			}
		}`))
	}))
	defer ts.Close()

	report, err := newTestClient(ts.URL).FetchRevenueReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1250.5, report.TotalRevenue)
	require.Len(t, report.CabinRevenue, 1)
	assert.Equal(t, "Suite", report.CabinRevenue[0].CabinType)
}

func TestSubmitBooking(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings/submit", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var submission BookingSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submission))
		assert.Equal(t, "BK-1001", submission.BookingID)
		assert.Equal(t, ActionConfirm, submission.Action)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "booking confirmed", "email_sent": true}`))
	}))
	defer ts.Close()

	result, err := newTestClient(ts.URL).SubmitBooking(context.Background(), BookingSubmission{
		BookingID: "BK-1001",
		Action:    ActionConfirm,
		TotalCost: 100,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.EmailSent)
	assert.Equal(t, "booking confirmed", result.Message)
}

func TestSubmitBooking_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	_, err := newTestClient(ts.URL).SubmitBooking(context.Background(), BookingSubmission{
		BookingID: "BK-1001",
		Action:    ActionConfirm,
	})
	assert.ErrorIs(t, err, ErrBackendUnreached)
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"confirm", "save_pending", "cancel"} {
		action, err := ParseAction(raw)
		require.NoError(t, err)
		assert.Equal(t, Action(raw), action)
	}

	_, err := ParseAction("refund")
	assert.ErrorIs(t, err, ErrInvalidAction)
}
