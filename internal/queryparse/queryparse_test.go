package queryparse

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
)

var prodCatalog = catalog.New(catalog.EnvProduction)

func must(raw string) url.Values {
	v, err := url.ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func TestParseBasicFilters(t *testing.T) {
	q, err := Parse(must("filters=areaType=nation;areaName=England"), nil, prodCatalog)
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)
	assert.Equal(t, "areaType", q.Filters[0].Name)
	assert.Equal(t, "=", q.Filters[0].Operator)
	assert.Equal(t, "nation", q.Filters[0].Value)
	assert.Equal(t, "AND", q.Filters[0].Connector)
	assert.Equal(t, "json", q.Format)
	assert.Equal(t, 1, q.Page)
}

func TestParseMissingAreaTypeFails(t *testing.T) {
	_, err := Parse(must("filters=areaName=England"), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseEmptyFiltersFails(t *testing.T) {
	_, err := Parse(must(""), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseLatestByRejectsCSV(t *testing.T) {
	_, err := Parse(must("filters=areaType=nation&latestBy=newCasesByPublishDate&format=csv"), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseLatestByRejectsPage(t *testing.T) {
	_, err := Parse(must("filters=areaType=nation&latestBy=newCasesByPublishDate&page=2"), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseLatestByAcceptsDateIdentifier(t *testing.T) {
	q, err := Parse(must("filters=areaType=nation&latestBy=date"), nil, prodCatalog)
	require.NoError(t, err)
	assert.Equal(t, "date", q.LatestBy)
}

func TestParseLatestByRejectsUnknownIdentifier(t *testing.T) {
	_, err := Parse(must("filters=areaType=nation&latestBy=unknown"), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseBadPageValue(t *testing.T) {
	_, err := Parse(must("filters=areaType=nation&page=zero"), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseTooManyFilters(t *testing.T) {
	q := "filters=areaType=nation;a=1;b=2;c=3;d=4;e=5"
	_, err := Parse(must(q), nil, prodCatalog)
	require.Error(t, err)
}

func TestParseRestrictedAreaType(t *testing.T) {
	restricted := map[string]bool{"msoa": true}
	_, err := Parse(must("filters=areaType=msoa"), restricted, prodCatalog)
	require.Error(t, err)
}

func TestParseGreaterThanOperator(t *testing.T) {
	q, err := Parse(must("filters=areaType=nation;date>=2021-01-01"), nil, prodCatalog)
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)
	assert.Equal(t, ">=", q.Filters[1].Operator)
	assert.Equal(t, "2021-01-01", q.Filters[1].Value)
}

func TestParseNotEqualOperator(t *testing.T) {
	q, err := Parse(must("filters=areaType=nation;areaName!=England"), nil, prodCatalog)
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)
	assert.Equal(t, "!=", q.Filters[1].Operator)
}

func TestParseOrConnector(t *testing.T) {
	q, err := Parse(must("filters=areaType=nation|areaType=region"), nil, prodCatalog)
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)
	assert.Equal(t, "OR", q.Filters[0].Connector)
	assert.Equal(t, "", q.Filters[1].Connector)
}

func TestParseMalformedFilterString(t *testing.T) {
	_, err := Parse(must("filters=this is not valid"), nil, prodCatalog)
	require.Error(t, err)
}
