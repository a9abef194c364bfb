package service

import (
	"testing"

	catalogservice "github.com/seafarelabs/portside/internal/catalog/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricing(t *testing.T) *pricingService {
	t.Helper()
	return &pricingService{catalog: catalogservice.New()}
}

func TestQuote_TotalsWithDefaultQuantity(t *testing.T) {
	svc := newPricing(t)

	quote := svc.Quote(
		map[string]bool{"spa": true, "casino": true},
		map[string]int{"spa": 2},
	)

	require.Len(t, quote.Lines, 2)
	// casino defaults to quantity 1: 50*2 + 25*1.
	assert.InDelta(t, 125, quote.Total, 1e-6)
	assert.Empty(t, quote.UnknownCodes)
}

func TestQuote_AlwaysSpeaksInDays(t *testing.T) {
	svc := newPricing(t)

	// casino is priced per event; the confirmation label still says days.
	quote := svc.Quote(map[string]bool{"casino": true}, map[string]int{"casino": 3})

	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "3 days", quote.Lines[0].QuantityLabel)
}

func TestQuote_SingularDay(t *testing.T) {
	svc := newPricing(t)

	quote := svc.Quote(map[string]bool{"spa": true}, nil)

	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "1 day", quote.Lines[0].QuantityLabel)
	assert.InDelta(t, 50, quote.Total, 1e-6)
}

func TestQuote_FreeAccess(t *testing.T) {
	svc := newPricing(t)

	quote := svc.Quote(map[string]bool{"fitness_center": true}, map[string]int{"fitness_center": 9})

	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "Free Access", quote.Lines[0].QuantityLabel)
	assert.Zero(t, quote.Total)
}

func TestQuote_UnknownCodesReportedNotPriced(t *testing.T) {
	svc := newPricing(t)

	quote := svc.Quote(
		map[string]bool{"spa": true, "submarine": true, "jetski": true},
		map[string]int{"submarine": 10},
	)

	require.Len(t, quote.Lines, 1)
	assert.InDelta(t, 50, quote.Total, 1e-6)
	assert.Equal(t, []string{"jetski", "submarine"}, quote.UnknownCodes)
}

func TestQuote_FalseSelectionExcluded(t *testing.T) {
	svc := newPricing(t)

	quote := svc.Quote(map[string]bool{"spa": false, "casino": true}, nil)

	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "casino", quote.Lines[0].FacilityCode)
}
