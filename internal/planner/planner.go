// Package planner turns a validated query into parameterized SQL against
// the partitioned long-format metric table. Partition identifiers are
// substituted as SQL identifiers via text/template; every filter value is
// bound through a numbered placeholder. The two are never mixed: nothing
// derived from client input is ever interpolated into the identifier
// position.
package planner

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// singlePartitionAreaTypes get their own partition; every other area type
// is filed under the "other" partition for a given release date.
var singlePartitionAreaTypes = map[string]bool{
	"utla":     true,
	"ltla":     true,
	"nhstrust": true,
	"msoa":     true,
}

// PartitionID computes the partition table suffix for an area type and
// release date: "{year}_{month}_{day}_{areaType|other}", unpadded.
func PartitionID(areaType string, releaseDate time.Time) string {
	suffix := "other"
	if singlePartitionAreaTypes[strings.ToLower(areaType)] {
		suffix = strings.ToLower(areaType)
	}
	return fmt.Sprintf("%d_%d_%d_%s", releaseDate.Year(), int(releaseDate.Month()), releaseDate.Day(), suffix)
}

// Predicate is a single bound filter condition, already coerced to its
// Go value and column name by the caller. Connector is how this
// predicate joins to the NEXT predicate in the slice ("AND"/"OR"); it is
// ignored on the last predicate. An empty Connector defaults to AND.
type Predicate struct {
	Column    string
	Operator  string
	Bound     any
	Connector string
}

// Plan is a fully-bound statement ready to hand to the database.
type Plan struct {
	SQL  string
	Args []any
}

type dataQueryParams struct {
	Partition  string
	Predicates string
	OrderBy    string
}

type aggregateQueryParams struct {
	Partition  string
	Predicates string
}

var dataQueryTemplate = template.Must(template.New("dataQuery").Parse(`
SELECT mr.area_code, mr.area_name, mr.area_type, mr.date, mr.metric, mr.value
FROM covid19.time_series_p{{.Partition}} AS mr
INNER JOIN covid19.release_reference AS rr ON rr.id = mr.release_id
WHERE mr.metric = ANY($1::VARCHAR[])
{{.Predicates}}
AND rr.released IS TRUE
ORDER BY {{.OrderBy}}
`))

var latestDateTemplate = template.Must(template.New("latestDate").Parse(`
SELECT MAX(mr.date)
FROM covid19.time_series_p{{.Partition}} AS mr
INNER JOIN covid19.release_reference AS rr ON rr.id = mr.release_id
WHERE mr.metric = ANY($1::VARCHAR[])
{{.Predicates}}
AND rr.released IS TRUE
`))

var existsTemplate = template.Must(template.New("exists").Parse(`
SELECT EXISTS (
    SELECT 1
    FROM covid19.time_series_p{{.Partition}} AS mr
    INNER JOIN covid19.release_reference AS rr ON rr.id = mr.release_id
    WHERE mr.metric = ANY($1::VARCHAR[])
    {{.Predicates}}
    AND rr.released IS TRUE
)
`))

var countTemplate = template.Must(template.New("count").Parse(`
SELECT COUNT(DISTINCT (mr.area_code, mr.date))
FROM covid19.time_series_p{{.Partition}} AS mr
INNER JOIN covid19.release_reference AS rr ON rr.id = mr.release_id
WHERE mr.metric = ANY($1::VARCHAR[])
{{.Predicates}}
AND rr.released IS TRUE
`))

// renderPredicates builds a single "AND (col op $n [AND|OR col op $n]*)"
// clause fragment, grouping every predicate behind one parenthesis so an
// OR connector cannot escape its intended scope, and returns the values
// to append to args, starting placeholder numbering at startPlaceholder.
func renderPredicates(predicates []Predicate, startPlaceholder int) (string, []any) {
	if len(predicates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(predicates))

	sb.WriteString("AND (")
	for i, p := range predicates {
		if i > 0 {
			connector := predicates[i-1].Connector
			if connector == "" {
				connector = "AND"
			}
			sb.WriteString(" " + connector + " ")
		}
		sb.WriteString(fmt.Sprintf("%s %s $%d", p.Column, p.Operator, startPlaceholder+i))
		args = append(args, p.Bound)
	}
	sb.WriteString(")\n")

	return sb.String(), args
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

// Data builds the paginated record-retrieval query. metrics are bound as
// a Postgres text array through args[0]; predicates occupy $2 onward;
// limit and offset are the trailing two placeholders.
func Data(partitionID string, metrics []any, predicates []Predicate, orderBy string, limit, offset int) Plan {
	predicateSQL, predicateArgs := renderPredicates(predicates, 2)

	sql := render(dataQueryTemplate, dataQueryParams{
		Partition:  partitionID,
		Predicates: predicateSQL,
		OrderBy:    orderBy,
	})

	args := append([]any{metrics}, predicateArgs...)
	placeholder := len(args) + 1
	sql += fmt.Sprintf("LIMIT $%d OFFSET $%d\n", placeholder, placeholder+1)
	args = append(args, limit, offset)

	return Plan{SQL: sql, Args: args}
}

// LatestDate builds the query used to resolve the latestBy reference date
// for a metric before the main data query runs.
func LatestDate(partitionID string, metrics []any, predicates []Predicate) Plan {
	predicateSQL, predicateArgs := renderPredicates(predicates, 2)
	sql := render(latestDateTemplate, aggregateQueryParams{Partition: partitionID, Predicates: predicateSQL})
	return Plan{SQL: sql, Args: append([]any{metrics}, predicateArgs...)}
}

// Exists builds the lightweight existence-check query: it returns true
// when at least one row matches the metrics and predicates.
func Exists(partitionID string, metrics []any, predicates []Predicate) Plan {
	predicateSQL, predicateArgs := renderPredicates(predicates, 2)
	sql := render(existsTemplate, aggregateQueryParams{Partition: partitionID, Predicates: predicateSQL})
	return Plan{SQL: sql, Args: append([]any{metrics}, predicateArgs...)}
}

// Count builds the query used to populate the count cache on a miss.
func Count(partitionID string, metrics []any, predicates []Predicate) Plan {
	predicateSQL, predicateArgs := renderPredicates(predicates, 2)
	sql := render(countTemplate, aggregateQueryParams{Partition: partitionID, Predicates: predicateSQL})
	return Plan{SQL: sql, Args: append([]any{metrics}, predicateArgs...)}
}
