// Package aggregate rolls normalized booking collections up into the summary
// view-models behind the dashboard cards. Every function is pure and
// recomputes from scratch; there is no incremental state.
package aggregate

import (
	"strings"

	"github.com/seafarelabs/portside/internal/preference/domain"
)

const (
	slotBreakfast  = "breakfast"
	slotLunch      = "lunch"
	slotDinner     = "dinner"
	slotMorningTea = "morning_tea"
	slotEveningTea = "evening_tea"
)

// RevenueSummary is the headline card over a filtered facility collection.
type RevenueSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	PaidCount     int     `json:"paid_count"`
	TotalBookings int     `json:"total_bookings"`
}

// Revenue sums TotalCost over paid bookings only; other statuses still count
// toward TotalBookings.
func Revenue(bookings []domain.Booking) RevenueSummary {
	summary := RevenueSummary{TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.Status != domain.StatusPaid {
			continue
		}
		summary.TotalRevenue += b.TotalCost
		summary.PaidCount++
	}
	return summary
}

// InventoryBucket accumulates one meal-type group. Breakdown holds unit
// counts per main meal slot (days × slot presence); tea slots are excluded
// here and reported globally.
type InventoryBucket struct {
	MealType       string         `json:"meal_type"`
	PassengerCount int            `json:"passenger_count"`
	Breakdown      map[string]int `json:"breakdown"`
}

// TeaSummary aggregates tea service across all meal-type groups.
type TeaSummary struct {
	Total   int `json:"total"`
	Morning int `json:"morning"`
	Evening int `json:"evening"`
}

// InventorySummary is the meal planning rollup.
type InventorySummary struct {
	Buckets []InventoryBucket `json:"buckets"`
	Tea     TeaSummary        `json:"tea"`
}

// Inventory groups meal bookings by meal type. Bucket order follows first
// appearance in the input.
func Inventory(meals []domain.MealBooking) InventorySummary {
	summary := InventorySummary{Buckets: []InventoryBucket{}}
	index := map[string]int{}

	for _, m := range meals {
		mealType := strings.TrimSpace(m.MealType)
		i, ok := index[mealType]
		if !ok {
			i = len(summary.Buckets)
			index[mealType] = i
			summary.Buckets = append(summary.Buckets, InventoryBucket{
				MealType: mealType,
				Breakdown: map[string]int{
					slotBreakfast: 0,
					slotLunch:     0,
					slotDinner:    0,
				},
			})
		}
		summary.Buckets[i].PassengerCount++

		for _, slot := range m.MainMeals {
			slot = strings.TrimSpace(slot)
			if slot == "" {
				continue
			}
			summary.Buckets[i].Breakdown[slot] += m.Days
		}

		for _, slot := range m.TeaTimes {
			switch strings.TrimSpace(slot) {
			case slotMorningTea:
				summary.Tea.Morning += m.Days
			case slotEveningTea:
				summary.Tea.Evening += m.Days
			}
		}
	}

	summary.Tea.Total = summary.Tea.Morning + summary.Tea.Evening
	return summary
}

// Bucket is one group of a generic rollup.
type Bucket struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Rollup groups items by key and sums the value per group, preserving
// first-appearance order.
func Rollup[T any](items []T, key func(T) string, value func(T) float64) []Bucket {
	buckets := []Bucket{}
	index := map[string]int{}
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}
		buckets[i].Total += value(item)
		buckets[i].Count++
	}
	return buckets
}

// FacilityRevenue rolls up line-item revenue per facility label across a
// filtered facility collection.
func FacilityRevenue(bookings []domain.Booking) []Bucket {
	items := []domain.LineItem{}
	for _, b := range bookings {
		items = append(items, b.LineItems...)
	}
	return Rollup(items,
		func(item domain.LineItem) string { return item.DisplayLabel },
		func(item domain.LineItem) float64 { return item.TotalCost },
	)
}

// CabinStat is one pre-aggregated cabin revenue row from the backend.
type CabinStat struct {
	CabinType     string  `json:"cabin_type"`
	BookingsCount int     `json:"bookings_count"`
	Revenue       float64 `json:"revenue"`
}

// PerformanceBucket carries per-cabin revenue with an average per booking.
// Average is nil when BookingsCount is zero: not applicable, never NaN/Inf.
type PerformanceBucket struct {
	CabinType     string   `json:"cabin_type"`
	BookingsCount int      `json:"bookings_count"`
	Revenue       float64  `json:"revenue"`
	Average       *float64 `json:"average,omitempty"`
}

// CabinPerformance computes revenue-per-booking for each cabin type.
func CabinPerformance(rows []CabinStat) []PerformanceBucket {
	out := make([]PerformanceBucket, 0, len(rows))
	for _, row := range rows {
		bucket := PerformanceBucket{
			CabinType:     row.CabinType,
			BookingsCount: row.BookingsCount,
			Revenue:       row.Revenue,
		}
		if row.BookingsCount > 0 {
			avg := row.Revenue / float64(row.BookingsCount)
			bucket.Average = &avg
		}
		out = append(out, bucket)
	}
	return out
}
