package service

import (
	"strings"

	"github.com/seafarelabs/portside/internal/catalog/domain"
)

// facilities is the static onboard facility table, in display order.
var facilities = []domain.FacilityDefinition{
	{Code: "spa", DisplayName: "Spa & Wellness", UnitPrice: 50, UnitKind: domain.UnitPerDay},
	{Code: "fitness_center", DisplayName: "Fitness Center", UnitPrice: 0, UnitKind: domain.UnitFree},
	{Code: "swimming_pool", DisplayName: "Swimming Pool", UnitPrice: 0, UnitKind: domain.UnitFree},
	{Code: "casino", DisplayName: "Casino", UnitPrice: 25, UnitKind: domain.UnitPerEvent},
	{Code: "shore_excursion", DisplayName: "Shore Excursion", UnitPrice: 75, UnitKind: domain.UnitPerEvent},
	{Code: "wifi_premium", DisplayName: "Premium Wi-Fi", UnitPrice: 12, UnitKind: domain.UnitPerDay},
	{Code: "mini_bar", DisplayName: "Mini Bar", UnitPrice: 15, UnitKind: domain.UnitPerDay},
	{Code: "private_cabana", DisplayName: "Private Cabana", UnitPrice: 20, UnitKind: domain.UnitPerHour},
	{Code: "babysitting", DisplayName: "Babysitting Service", UnitPrice: 18, UnitKind: domain.UnitPerHour},
	{Code: "kids_club", DisplayName: "Kids Club", UnitPrice: 0, UnitKind: domain.UnitFree},
	{Code: "theatre", DisplayName: "Theatre Show", UnitPrice: 30, UnitKind: domain.UnitPerEvent},
	{Code: "laundry", DisplayName: "Laundry Service", UnitPrice: 10, UnitKind: domain.UnitPerDay},
}

type catalogService struct {
	byCode map[string]domain.FacilityDefinition
	order  []domain.FacilityDefinition
}

// New builds the catalog service. The table is fixed after construction.
func New() domain.Service {
	byCode := make(map[string]domain.FacilityDefinition, len(facilities))
	for _, def := range facilities {
		byCode[def.Code] = def
	}
	return &catalogService{byCode: byCode, order: facilities}
}

func (s *catalogService) Lookup(code string) (domain.FacilityDefinition, bool) {
	def, ok := s.byCode[strings.TrimSpace(code)]
	return def, ok
}

func (s *catalogService) All() []domain.FacilityDefinition {
	out := make([]domain.FacilityDefinition, len(s.order))
	copy(out, s.order)
	return out
}
