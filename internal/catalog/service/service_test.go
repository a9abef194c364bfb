package service

import (
	"testing"

	"github.com/seafarelabs/portside/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	catalog := New()

	def, ok := catalog.Lookup("spa")
	require.True(t, ok)
	assert.Equal(t, "Spa & Wellness", def.DisplayName)
	assert.Equal(t, 50.0, def.UnitPrice)
	assert.Equal(t, domain.UnitPerDay, def.UnitKind)

	def, ok = catalog.Lookup("  casino  ")
	require.True(t, ok)
	assert.Equal(t, domain.UnitPerEvent, def.UnitKind)

	_, ok = catalog.Lookup("helipad")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	catalog := New()

	all := catalog.All()
	require.Len(t, all, 12)
	assert.Equal(t, "spa", all[0].Code)

	// Callers get a copy, not the backing table.
	all[0].Code = "mutated"
	again := catalog.All()
	assert.Equal(t, "spa", again[0].Code)
}

func TestUnitNoun(t *testing.T) {
	assert.Equal(t, "days", domain.UnitPerDay.UnitNoun())
	assert.Equal(t, "hours", domain.UnitPerHour.UnitNoun())
	assert.Equal(t, "events", domain.UnitPerEvent.UnitNoun())
	assert.Equal(t, "days", domain.UnitFree.UnitNoun())
}
