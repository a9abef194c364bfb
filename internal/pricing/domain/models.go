package domain

// QuoteLine is one priced facility entry on a confirmation quote.
type QuoteLine struct {
	FacilityCode  string  `json:"facility_code"`
	DisplayLabel  string  `json:"display_label"`
	Quantity      int     `json:"quantity"`
	QuantityLabel string  `json:"quantity_label"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}

// Quote is the computed confirmation total. UnknownCodes lists selected codes
// absent from the catalog; they contribute nothing to Total.
type Quote struct {
	Lines        []QuoteLine `json:"lines"`
	Total        float64     `json:"total"`
	UnknownCodes []string    `json:"unknown_codes,omitempty"`
}

// Service computes confirmation quotes from a facility selection.
type Service interface {
	Quote(selected map[string]bool, quantities map[string]int) Quote
}
