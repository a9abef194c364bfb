// Package bookingapi is the HTTP client for the booking/payment backend.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/seafarelabs/portside/internal/config"
	"github.com/seafarelabs/portside/internal/preference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

// Client talks to the booking backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds the backend client.
func New(p Params) *Client {
	return &Client{
		baseURL: p.Cfg.BookingAPIBaseURL,
		http:    &http.Client{Timeout: p.Cfg.BookingAPITimeout},
		log:     p.Log.Named("bookingapi.client"),
	}
}

// FetchFacilityPreferences loads raw facility preference records.
func (c *Client) FetchFacilityPreferences(ctx context.Context) ([]domain.RawFacilityPreference, error) {
	var resp facilityPreferencesResponse
	if err := c.getJSON(ctx, "/api/preferences/facilities", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: facility preferences", ErrBackendRejected)
	}
	return resp.Preferences, nil
}

// FetchMealPreferences loads raw meal preference records.
func (c *Client) FetchMealPreferences(ctx context.Context) ([]domain.RawMealPreference, error) {
	var resp mealPreferencesResponse
	if err := c.getJSON(ctx, "/api/preferences/meals", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: meal preferences", ErrBackendRejected)
	}
	return resp.Preferences, nil
}

// FetchRevenueReport loads the pre-aggregated revenue dataset.
func (c *Client) FetchRevenueReport(ctx context.Context) (RevenueReport, error) {
	var resp revenueResponse
	if err := c.getJSON(ctx, "/api/reports/revenue", &resp); err != nil {
		return RevenueReport{}, err
	}
	if !resp.Success {
		return RevenueReport{}, fmt.Errorf("%w: revenue report", ErrBackendRejected)
	}
	return resp.Data, nil
}

// SubmitBooking forwards a confirmation/payment submission. The backend owns
// payment processing and persistence; this client only relays the payload.
func (c *Client) SubmitBooking(ctx context.Context, submission BookingSubmission) (SubmissionResult, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return SubmissionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings/submit", bytes.NewReader(body))
	if err != nil {
		return SubmissionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("booking submission failed", zap.Error(err))
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrBackendUnreached, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return SubmissionResult{}, fmt.Errorf("%w: status %d", ErrBackendRejected, resp.StatusCode)
	}

	var result SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrBackendRejected, err)
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend fetch failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnreached, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrBackendRejected, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendRejected, err)
	}
	return nil
}
