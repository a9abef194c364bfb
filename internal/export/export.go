// Package export renders the filtered booking collection as delimited text.
// Cells are comma-separated; multi-valued cells join their entries with "; ".
package export

import (
	"strconv"
	"strings"

	"github.com/seafarelabs/portside/internal/preference/domain"
)

const (
	cellSeparator  = ","
	valueSeparator = "; "
)

var header = []string{
	"Passenger Name",
	"Booking ID",
	"Facilities",
	"Quantities",
	"Costs",
	"Status",
	"Total Cost",
}

// Bookings renders one row per booking, preceded by a header row.
func Bookings(bookings []domain.Booking) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(header, cellSeparator))
	sb.WriteString("\n")

	for _, b := range bookings {
		labels := make([]string, 0, len(b.LineItems))
		quantities := make([]string, 0, len(b.LineItems))
		costs := make([]string, 0, len(b.LineItems))
		for _, item := range b.LineItems {
			labels = append(labels, item.DisplayLabel)
			quantities = append(quantities, item.QuantityLabel)
			costs = append(costs, formatAmount(item.TotalCost))
		}

		row := []string{
			b.PassengerName,
			b.BookingID,
			strings.Join(labels, valueSeparator),
			strings.Join(quantities, valueSeparator),
			strings.Join(costs, valueSeparator),
			string(b.Status),
			formatAmount(b.TotalCost),
		}
		sb.WriteString(strings.Join(row, cellSeparator))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
