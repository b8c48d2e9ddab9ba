// Package structure validates and parses the "structure" query parameter,
// the client-supplied mapping from response column label to catalogued
// metric name.
package structure

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
)

// MaxColumns bounds how many metrics a single response may carry.
const MaxColumns = 8

var labelPattern = regexp.MustCompile(`(?i)^[a-z2356780]{2,75}$`)

// Column is one output column: the label the client sees and the
// catalogued metric it is sourced from.
type Column struct {
	Label  string
	Metric string
}

// Structure is the ordered set of columns a response is shaped into.
// Order is preserved from the client's JSON so wide-format responses
// come back in the order the client asked for.
type Structure struct {
	Columns []Column
}

// Metrics returns the catalogued metric name of every column, in column
// order; a metric referenced by two columns appears twice.
func (s *Structure) Metrics() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Metric
	}
	return out
}

// Parse validates raw (the literal value of the structure query
// parameter) against cat and returns the resulting column set.
//
// raw must decode either to a flat JSON object (label -> metric name) or
// a flat JSON array of metric names, in which case the metric name
// doubles as its own label.
func Parse(raw string, cat *catalog.Catalog) (*Structure, error) {
	if pairs, ok := tryObject(raw); ok {
		return buildOrdered(pairs, cat)
	}

	if asArray, ok := tryArray(raw); ok {
		pairs := make([]pair, 0, len(asArray))
		for _, name := range asArray {
			pairs = append(pairs, pair{label: name, metric: name})
		}
		return buildOrdered(pairs, cat)
	}

	return nil, apierr.InvalidStructure()
}

type pair struct {
	label  string
	metric string
}

// tryObject decodes raw as a flat JSON object of label -> metric name and
// returns its pairs in the order the keys appear in raw.
func tryObject(raw string) ([]pair, bool) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, false
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	_, _ = dec.Token()
	pairs := make([]pair, 0, len(m))
	for dec.More() {
		key, _ := dec.Token()
		var metric string
		_ = dec.Decode(&metric)
		pairs = append(pairs, pair{label: key.(string), metric: metric})
	}
	return pairs, true
}

func tryArray(raw string) ([]string, bool) {
	var a []string
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, false
	}
	return a, true
}

func buildOrdered(pairs []pair, cat *catalog.Catalog) (*Structure, error) {
	if len(pairs) == 0 || len(pairs) > MaxColumns {
		return nil, apierr.StructureTooLarge(MaxColumns, len(pairs))
	}

	columns := make([]Column, 0, len(pairs))
	for _, p := range pairs {
		if !labelPattern.MatchString(p.label) {
			return nil, apierr.InvalidStructure()
		}
		if !cat.Has(p.metric) {
			closest := apierr.ClosestMatch(p.metric, cat.Names())
			return nil, apierr.InvalidStructureParameter(p.metric, "mapping", closest)
		}
		columns = append(columns, Column{Label: p.label, Metric: p.metric})
	}

	return &Structure{Columns: columns}, nil
}
