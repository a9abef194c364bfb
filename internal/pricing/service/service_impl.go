package service

import (
	"fmt"
	"sort"

	catalogdomain "github.com/seafarelabs/portside/internal/catalog/domain"
	"github.com/seafarelabs/portside/internal/pricing/domain"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Catalog catalogdomain.Service
}

type pricingService struct {
	catalog catalogdomain.Service
}

// New builds the pricing service.
func New(p Params) domain.Service {
	return &pricingService{catalog: p.Catalog}
}

// Quote prices a facility selection for the confirmation step. Confirmation
// labels always speak in days, which is deliberately coarser than the
// dashboard normalizer's unit-aware labels.
func (s *pricingService) Quote(selected map[string]bool, quantities map[string]int) domain.Quote {
	codes := make([]string, 0, len(selected))
	for code, on := range selected {
		if on {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	quote := domain.Quote{Lines: make([]domain.QuoteLine, 0, len(codes))}
	for _, code := range codes {
		def, ok := s.catalog.Lookup(code)
		if !ok {
			quote.UnknownCodes = append(quote.UnknownCodes, code)
			continue
		}
		quantity := quantities[code]
		if quantity <= 0 {
			quantity = 1
		}
		line := domain.QuoteLine{
			FacilityCode:  def.Code,
			DisplayLabel:  def.DisplayName,
			Quantity:      quantity,
			QuantityLabel: confirmationLabel(def.UnitPrice, quantity),
			UnitPrice:     def.UnitPrice,
			TotalPrice:    def.UnitPrice * float64(quantity),
		}
		quote.Lines = append(quote.Lines, line)
		quote.Total += line.TotalPrice
	}
	return quote
}

func confirmationLabel(unitPrice float64, quantity int) string {
	if unitPrice == 0 {
		return "Free Access"
	}
	if quantity == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", quantity)
}
