package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionExcludesDevOnlyMetrics(t *testing.T) {
	c := New(EnvProduction)

	assert.True(t, c.Has("newCasesByPublishDate"))
	assert.False(t, c.Has("totalBeds"), "totalBeds is development-only")
}

func TestNewDevelopmentIsSupersetOfProduction(t *testing.T) {
	prod := New(EnvProduction)
	dev := New(EnvDevelopment)

	require.Greater(t, dev.Size(), prod.Size())

	for _, name := range prod.Names() {
		assert.True(t, dev.Has(name), "development catalog dropped %s", name)
	}

	assert.True(t, dev.Has("totalBeds"))
}

func TestLookupReturnsSemanticType(t *testing.T) {
	c := New(EnvProduction)

	m, ok := c.Lookup("newCasesByPublishDate")
	require.True(t, ok)
	assert.Equal(t, Int, m.Type)

	m, ok = c.Lookup("areaName")
	require.True(t, ok)
	assert.Equal(t, Text, m.Type)

	_, ok = c.Lookup("doesNotExist")
	assert.False(t, ok)
}

func TestNamesAreSorted(t *testing.T) {
	c := New(EnvProduction)
	names := c.Names()

	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}
