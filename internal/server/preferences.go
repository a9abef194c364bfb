package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seafarelabs/portside/internal/aggregate"
	"github.com/seafarelabs/portside/internal/export"
	"github.com/seafarelabs/portside/internal/filterengine"
	"github.com/seafarelabs/portside/internal/snapshot"
	"go.uber.org/zap"
)

// RefreshPreferences fetches both preference collections, normalizes them and
// publishes a new snapshot. A fetch that fails yields an empty collection
// rather than an error: dashboards render a loading-complete, zero-result
// state. A refresh superseded by a newer one is discarded.
func (s *Server) RefreshPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	token := s.store.NewToken()

	rawFacilities, err := s.api.FetchFacilityPreferences(ctx)
	if err != nil {
		s.log.Warn("facility preference fetch failed", zap.Error(err))
		s.obsMetrics.RecordFetchFailure("facilities")
		rawFacilities = nil
	}
	rawMeals, err := s.api.FetchMealPreferences(ctx)
	if err != nil {
		s.log.Warn("meal preference fetch failed", zap.Error(err))
		s.obsMetrics.RecordFetchFailure("meals")
		rawMeals = nil
	}

	bookings, dropped := s.normalizer.NormalizeFacilityCollection(rawFacilities)
	meals := s.normalizer.NormalizeMealCollection(rawMeals)

	s.obsMetrics.RecordNormalized("facilities", len(bookings))
	s.obsMetrics.RecordNormalized("meals", len(meals))
	s.obsMetrics.RecordDroppedCodes(dropped)

	snap := snapshot.Snapshot{
		Token:        token,
		FetchedAt:    timeNow(),
		Bookings:     bookings,
		Meals:        meals,
		DroppedCodes: dropped,
	}
	published := s.store.Publish(snap)

	c.JSON(http.StatusOK, gin.H{
		"published":     published,
		"bookings":      len(bookings),
		"meals":         len(meals),
		"dropped_codes": dropped,
	})
}

// ListFacilityPreferences filters the current snapshot and attaches the
// revenue summary cards.
func (s *Server) ListFacilityPreferences(c *gin.Context) {
	snap := s.store.Current()
	filtered := filterengine.Apply(snap.Bookings, bookingCriteriaFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"bookings":      filtered,
		"summary":       aggregate.Revenue(filtered),
		"dropped_codes": snap.DroppedCodes,
		"fetched_at":    snap.FetchedAt,
	})
}

// ListMealPreferences filters the current snapshot and attaches the meal
// inventory rollup.
func (s *Server) ListMealPreferences(c *gin.Context) {
	snap := s.store.Current()
	filtered := filterengine.ApplyMeals(snap.Meals, mealCriteriaFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"meals":      filtered,
		"inventory":  aggregate.Inventory(filtered),
		"fetched_at": snap.FetchedAt,
	})
}

// ExportFacilityPreferences renders the filtered collection as delimited text.
func (s *Server) ExportFacilityPreferences(c *gin.Context) {
	snap := s.store.Current()
	filtered := filterengine.Apply(snap.Bookings, bookingCriteriaFromQuery(c))

	c.Header("Content-Disposition", `attachment; filename="facility_preferences.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Bookings(filtered)))
}
