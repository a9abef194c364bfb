package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seafarelabs/portside/internal/bookingapi"
	"go.uber.org/zap"
)

type quoteRequest struct {
	SelectedFacilities map[string]bool `json:"selected_facilities"`
	Quantities         map[string]int  `json:"quantities"`
}

// QuoteBooking prices a facility selection for the confirmation step.
func (s *Server) QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	c.JSON(http.StatusOK, s.pricing.Quote(req.SelectedFacilities, req.Quantities))
}

type confirmRequest struct {
	BookingID          string                  `json:"booking_id"`
	Action             string                  `json:"action"`
	SelectedFacilities map[string]bool         `json:"selected_facilities"`
	Quantities         map[string]int          `json:"quantities"`
	PassengerEmail     string                  `json:"passenger_email"`
	PassengerName      string                  `json:"passenger_name"`
	CardDetails        *bookingapi.CardDetails `json:"card_details,omitempty"`
}

// ConfirmBooking computes the quote server-side and forwards the submission
// to the backend, which owns payment processing and persistence.
func (s *Server) ConfirmBooking(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	if strings.TrimSpace(req.BookingID) == "" {
		AbortWithError(c, newValidationError("booking_id", "required", "booking_id is required"))
		return
	}
	action, err := bookingapi.ParseAction(req.Action)
	if err != nil {
		AbortWithError(c, newValidationError("action", "invalid_action", "action must be confirm, save_pending or cancel"))
		return
	}

	quote := s.pricing.Quote(req.SelectedFacilities, req.Quantities)

	result, err := s.api.SubmitBooking(c.Request.Context(), bookingapi.BookingSubmission{
		BookingID:          req.BookingID,
		Action:             action,
		SelectedFacilities: req.SelectedFacilities,
		Quantities:         req.Quantities,
		TotalCost:          quote.Total,
		PassengerEmail:     req.PassengerEmail,
		PassengerName:      req.PassengerName,
		CardDetails:        req.CardDetails,
	})
	if err != nil {
		s.log.Warn("booking submission failed",
			zap.String("booking_id", req.BookingID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		s.obsMetrics.RecordPaymentSubmission(string(action), "error")
		AbortWithError(c, err)
		return
	}

	outcome := "rejected"
	if result.Success {
		outcome = "accepted"
	}
	s.obsMetrics.RecordPaymentSubmission(string(action), outcome)

	c.JSON(http.StatusOK, gin.H{
		"success":       result.Success,
		"message":       result.Message,
		"email_sent":    result.EmailSent,
		"total_cost":    quote.Total,
		"lines":         quote.Lines,
		"unknown_codes": quote.UnknownCodes,
	})
}
