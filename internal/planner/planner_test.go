package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIDSinglePartitionAreaType(t *testing.T) {
	d := time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2021_3_5_utla", PartitionID("utla", d))
	assert.Equal(t, "2021_3_5_utla", PartitionID("UTLA", d))
}

func TestPartitionIDOtherAreaType(t *testing.T) {
	d := time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2021_12_25_other", PartitionID("nation", d))
	assert.Equal(t, "2021_12_25_other", PartitionID("region", d))
}

func TestDataPlanNumbersPlaceholdersInOrder(t *testing.T) {
	predicates := []Predicate{
		{Column: "area_type", Operator: "=", Bound: "nation"},
		{Column: "area_name", Operator: "=", Bound: "england"},
	}
	plan := Data("2021_3_5_other", []any{"newCasesByPublishDate"}, predicates, "mr.date DESC", 100, 0)

	require.Len(t, plan.Args, 5)
	assert.Equal(t, "nation", plan.Args[1])
	assert.Equal(t, "england", plan.Args[2])
	assert.Equal(t, 100, plan.Args[3])
	assert.Equal(t, 0, plan.Args[4])
	assert.Contains(t, plan.SQL, "$4")
	assert.Contains(t, plan.SQL, "$5")
	assert.Contains(t, plan.SQL, "time_series_p2021_3_5_other")
}

func TestCountPlanHasNoLimitClause(t *testing.T) {
	plan := Count("2021_3_5_other", []any{"newCasesByPublishDate"}, nil)
	assert.NotContains(t, plan.SQL, "LIMIT")
	require.Len(t, plan.Args, 1)
}

func TestExistsPlanWrapsInExists(t *testing.T) {
	plan := Exists("2021_3_5_other", []any{"newCasesByPublishDate"}, nil)
	assert.Contains(t, plan.SQL, "SELECT EXISTS")
}

func TestRenderPredicatesGroupsWithConnectors(t *testing.T) {
	predicates := []Predicate{
		{Column: "area_type", Operator: "=", Bound: "nation", Connector: "OR"},
		{Column: "area_type", Operator: "=", Bound: "region"},
	}
	plan := Count("2021_3_5_other", []any{"newCasesByPublishDate"}, predicates)

	assert.Contains(t, plan.SQL, "AND (area_type = $2 OR area_type = $3)")
	require.Len(t, plan.Args, 3)
}

func TestRenderPredicatesDefaultsToAnd(t *testing.T) {
	predicates := []Predicate{
		{Column: "area_type", Operator: "=", Bound: "nation"},
		{Column: "area_name", Operator: "=", Bound: "England"},
	}
	plan := Count("2021_3_5_other", []any{"newCasesByPublishDate"}, predicates)

	assert.Contains(t, plan.SQL, "AND (area_type = $2 AND area_name = $3)")
}
