package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
)

func TestParseArrayStructure(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	s, err := Parse(`["areaName","areaCode","date","newCasesByPublishDate"]`, cat)
	require.NoError(t, err)
	assert.Len(t, s.Columns, 4)
	assert.Equal(t, []string{"areaName", "areaCode", "date", "newCasesByPublishDate"}, s.Metrics())
}

func TestParseObjectStructure(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	s, err := Parse(`{"name":"areaName","code":"areaCode"}`, cat)
	require.NoError(t, err)
	assert.Len(t, s.Columns, 2)
}

func TestParseUnknownMetricSuggestsClosest(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	_, err := Parse(`["areaNam"]`, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "areaName")
}

func TestParseRejectsOversizedStructure(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	_, err := Parse(`["areaName","areaCode","areaType","date","newCasesByPublishDate","newDeaths28DaysByPublishDate","cumCasesByPublishDate","cumDeaths28DaysByPublishDate","newAdmissions"]`, cat)
	require.Error(t, err)
}

func TestParseRejectsMalformedStructure(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	_, err := Parse(`not-json`, cat)
	require.Error(t, err)
}

func TestParseRejectsEmptyStructure(t *testing.T) {
	cat := catalog.New(catalog.EnvProduction)
	_, err := Parse(`[]`, cat)
	require.Error(t, err)
}
