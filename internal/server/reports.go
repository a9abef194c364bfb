package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seafarelabs/portside/internal/aggregate"
	"github.com/seafarelabs/portside/internal/bookingapi"
	"go.uber.org/zap"
)

// GetRevenueReport combines the backend revenue dataset with locally computed
// rollups. A failed fetch degrades to an empty, zero-result report.
func (s *Server) GetRevenueReport(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := s.api.FetchRevenueReport(ctx)
	hasData := err == nil
	if err != nil {
		s.log.Warn("revenue report fetch failed", zap.Error(err))
		s.obsMetrics.RecordFetchFailure("revenue")
		report = bookingapi.RevenueReport{}
	}

	cabinStats := make([]aggregate.CabinStat, 0, len(report.CabinRevenue))
	for _, row := range report.CabinRevenue {
		cabinStats = append(cabinStats, aggregate.CabinStat{
			CabinType:     row.CabinType,
			BookingsCount: row.BookingsCount,
			Revenue:       row.Revenue,
		})
	}

	shipRevenue := aggregate.Rollup(report.ShipRevenue,
		func(row bookingapi.ShipRevenueRow) string { return row.ShipName },
		func(row bookingapi.ShipRevenueRow) float64 { return row.Revenue },
	)

	snap := s.store.Current()

	c.JSON(http.StatusOK, gin.H{
		"has_data":          hasData,
		"total_revenue":     report.TotalRevenue,
		"cabin_performance": aggregate.CabinPerformance(cabinStats),
		"ship_revenue":      shipRevenue,
		"services_revenue":  report.ServiceRevenue,
		"monthly_revenue":   report.MonthlyRevenue,
		"top_bookings":      report.TopBookings,
		"facility_revenue":  aggregate.FacilityRevenue(snap.Bookings),
	})
}
