package service

import (
	"fmt"
	"sort"
	"strings"

	catalogdomain "github.com/seafarelabs/portside/internal/catalog/domain"
	"github.com/seafarelabs/portside/internal/preference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	unknownPassenger = "Unknown"
	freeAccessLabel  = "Free Access"
)

// mealLabels maps raw meal slot identifiers to display strings. Unrecognized
// identifiers pass through as their raw value.
var mealLabels = map[string]string{
	"breakfast":   "Breakfast",
	"lunch":       "Lunch",
	"dinner":      "Dinner",
	"morning_tea": "Morning Tea",
	"evening_tea": "Evening Tea",
}

// MealLabel resolves a raw meal slot identifier to its display string.
func MealLabel(raw string) string {
	if label, ok := mealLabels[strings.TrimSpace(raw)]; ok {
		return label
	}
	return raw
}

// facilitySource is the resolved representation of one raw facility record:
// either the server's authoritative breakdown or the legacy flag/quantity maps.
type facilitySource interface{ isFacilitySource() }

type authoritativeSource struct {
	items []domain.RawFacilityDetail
}

type legacySource struct {
	flags      map[string]bool
	quantities map[string]int
}

func (authoritativeSource) isFacilitySource() {}
func (legacySource) isFacilitySource()        {}

// resolveSource picks the trusted representation exactly once per record.
// A present, non-empty facility_details array wins; the flag/quantity maps
// are ignored entirely in that case.
func resolveSource(raw domain.RawFacilityPreference) facilitySource {
	if len(raw.FacilityDetails) > 0 {
		return authoritativeSource{items: raw.FacilityDetails}
	}
	return legacySource{flags: raw.SelectedFacilities, quantities: raw.Quantities}
}

type Params struct {
	fx.In

	Catalog catalogdomain.Service
	Log     *zap.Logger
}

type normalizer struct {
	catalog catalogdomain.Service
	log     *zap.Logger
}

// New builds the preference normalizer.
func New(p Params) domain.Normalizer {
	return &normalizer{
		catalog: p.Catalog,
		log:     p.Log.Named("preference.normalizer"),
	}
}

func (n *normalizer) NormalizeFacility(raw domain.RawFacilityPreference, seq int) (domain.Booking, int) {
	var (
		items   []domain.LineItem
		dropped int
	)

	switch src := resolveSource(raw).(type) {
	case authoritativeSource:
		items = n.fromAuthoritative(src.items)
	case legacySource:
		items, dropped = n.fromLegacy(src)
	}

	total := 0.0
	for _, item := range items {
		total += item.TotalCost
	}

	status := raw.PaymentStatus
	if strings.TrimSpace(status) == "" {
		status = raw.Status
	}

	return domain.Booking{
		ID:            seq,
		PassengerName: passengerName(raw.PassengerName),
		BookingID:     strings.TrimSpace(raw.BookingID),
		LineItems:     items,
		TotalCost:     total,
		Status:        domain.ParseStatus(status),
	}, dropped
}

func (n *normalizer) NormalizeFacilityCollection(raws []domain.RawFacilityPreference) ([]domain.Booking, int) {
	bookings := make([]domain.Booking, 0, len(raws))
	dropped := 0
	for i, raw := range raws {
		booking, recordDropped := n.NormalizeFacility(raw, i+1)
		bookings = append(bookings, booking)
		dropped += recordDropped
	}
	if dropped > 0 {
		n.log.Warn("dropped unresolved facility codes", zap.Int("count", dropped))
	}
	return bookings, dropped
}

func (n *normalizer) NormalizeMeal(raw domain.RawMealPreference, seq int) domain.MealBooking {
	days := raw.Days
	if days < 0 {
		days = 0
	}
	return domain.MealBooking{
		ID:            seq,
		PassengerName: passengerName(raw.PassengerName),
		BookingID:     strings.TrimSpace(raw.BookingID),
		MealType:      strings.TrimSpace(raw.MealType),
		MainMeals:     raw.MainMeals,
		MainLabels:    labelSlots(raw.MainMeals),
		TeaTimes:      raw.TeaTimes,
		TeaLabels:     labelSlots(raw.TeaTimes),
		Days:          days,
		Notes:         raw.Notes,
	}
}

func (n *normalizer) NormalizeMealCollection(raws []domain.RawMealPreference) []domain.MealBooking {
	meals := make([]domain.MealBooking, 0, len(raws))
	for i, raw := range raws {
		meals = append(meals, n.NormalizeMeal(raw, i+1))
	}
	return meals
}

// fromAuthoritative trusts the server breakdown as-is, including its totals.
func (n *normalizer) fromAuthoritative(details []domain.RawFacilityDetail) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(details))
	for _, detail := range details {
		items = append(items, domain.LineItem{
			FacilityCode:  strings.TrimSpace(detail.Name),
			DisplayLabel:  detail.Name,
			QuantityLabel: quantityLabel(detail.UnitPrice, detail.Quantity, unitNoun(detail.Unit)),
			UnitCost:      detail.UnitPrice,
			TotalCost:     detail.TotalPrice,
		})
	}
	return items
}

// fromLegacy derives line items from the flag/quantity maps against the
// catalog. Codes without a catalog entry are dropped, not defaulted. Map
// order is not stable in Go, so selected codes are walked in sorted order.
func (n *normalizer) fromLegacy(src legacySource) ([]domain.LineItem, int) {
	codes := make([]string, 0, len(src.flags))
	for code, selected := range src.flags {
		if selected {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	items := make([]domain.LineItem, 0, len(codes))
	dropped := 0
	for _, code := range codes {
		def, ok := n.catalog.Lookup(code)
		if !ok {
			dropped++
			continue
		}
		quantity := src.quantities[code]
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, domain.LineItem{
			FacilityCode:  def.Code,
			DisplayLabel:  def.DisplayName,
			QuantityLabel: quantityLabel(def.UnitPrice, quantity, def.UnitKind.UnitNoun()),
			UnitCost:      def.UnitPrice,
			TotalCost:     def.UnitPrice * float64(quantity),
		})
	}
	return items, dropped
}

// quantityLabel formats the human-readable quantity. A zero unit price always
// reads "Free Access" regardless of the numeric quantity.
func quantityLabel(unitPrice float64, quantity int, noun string) string {
	if unitPrice == 0 {
		return freeAccessLabel
	}
	return fmt.Sprintf("%d %s", quantity, noun)
}

// unitNoun maps an authoritative detail's unit string to the label noun.
func unitNoun(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "hour", "hours":
		return "hours"
	case "event", "events":
		return "events"
	default:
		return "days"
	}
}

func labelSlots(raw []string) []string {
	labels := make([]string, 0, len(raw))
	for _, slot := range raw {
		labels = append(labels, MealLabel(slot))
	}
	return labels
}

func passengerName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return unknownPassenger
	}
	return name
}
