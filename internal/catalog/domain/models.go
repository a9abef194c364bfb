package domain

// UnitKind describes how a facility is charged.
type UnitKind string

const (
	UnitFree     UnitKind = "free"
	UnitPerDay   UnitKind = "per_day"
	UnitPerHour  UnitKind = "per_hour"
	UnitPerEvent UnitKind = "per_event"
)

// UnitNoun returns the plural noun used in quantity labels.
func (k UnitKind) UnitNoun() string {
	switch k {
	case UnitPerHour:
		return "hours"
	case UnitPerEvent:
		return "events"
	default:
		return "days"
	}
}

// FacilityDefinition is one row of the onboard facility reference table.
// UnitPrice == 0 is the sole signal for free access; there is no separate flag.
type FacilityDefinition struct {
	Code        string   `json:"code"`
	DisplayName string   `json:"display_name"`
	UnitPrice   float64  `json:"unit_price"`
	UnitKind    UnitKind `json:"unit_kind"`
}

// Service exposes read-only facility reference data.
type Service interface {
	Lookup(code string) (FacilityDefinition, bool)
	All() []FacilityDefinition
}
