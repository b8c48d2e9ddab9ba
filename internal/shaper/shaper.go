// Package shaper pivots the long-format rows returned by the database
// (one row per area/date/metric) into the wide-format records the API
// returns (one row per area/date, one column per requested metric), and
// applies the typed coercion the wire format requires.
package shaper

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/structure"
)

// Row is one long-format record as read from the metric table.
type Row struct {
	AreaCode string
	AreaName string
	AreaType string
	Date     time.Time
	Metric   string
	Value    any
}

// Record is one wide-format output row. Columns preserves the order the
// client declared in its structure so JSON/XML/CSV rendering is
// deterministic and reproduces the same byte layout on repeated calls,
// which a bare map cannot guarantee.
type Record struct {
	Columns []string
	Values  map[string]any
}

// MarshalJSON renders the record as an object with keys in Columns order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// MarshalXML renders one child element per column, named after the
// column label, in declared order.
func (r Record) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range r.Columns {
		elem := xml.StartElement{Name: xml.Name{Local: col}}
		if err := e.EncodeElement(xmlScalar(r.Values[col]), elem); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func xmlScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int, int64, float64, bool:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

type groupKey struct {
	areaCode string
	date     time.Time
}

// Pivot groups rows by (areaCode, date) and projects each group onto the
// columns declared by s, coercing each metric's value to its catalogued
// semantic type, preserving column order and filling columns with no
// matching metric value with nil.
func Pivot(rows []Row, s *structure.Structure, cat *catalog.Catalog) []Record {
	groups := make(map[groupKey]*groupState)
	order := make([]groupKey, 0)

	for _, r := range rows {
		key := groupKey{areaCode: r.AreaCode, date: r.Date}
		g, ok := groups[key]
		if !ok {
			g = &groupState{areaCode: r.AreaCode, areaName: r.AreaName, areaType: r.AreaType, date: r.Date, values: map[string]any{}}
			groups[key] = g
			order = append(order, key)
		}
		if _, taken := g.values[r.Metric]; !taken {
			g.values[r.Metric] = r.Value
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].areaCode != order[j].areaCode {
			return order[i].areaCode < order[j].areaCode
		}
		return order[i].date.After(order[j].date)
	})

	records := make([]Record, 0, len(order))
	for _, key := range order {
		g := groups[key]
		records = append(records, project(g, s, cat))
	}

	return records
}

type groupState struct {
	areaCode string
	areaName string
	areaType string
	date     time.Time
	values   map[string]any
}

func project(g *groupState, s *structure.Structure, cat *catalog.Catalog) Record {
	rec := Record{
		Columns: make([]string, 0, len(s.Columns)),
		Values:  make(map[string]any, len(s.Columns)),
	}

	for _, col := range s.Columns {
		rec.Columns = append(rec.Columns, col.Label)

		switch col.Metric {
		case "areaCode":
			rec.Values[col.Label] = g.areaCode
		case "areaName":
			rec.Values[col.Label] = g.areaName
		case "areaType":
			rec.Values[col.Label] = g.areaType
		case "date":
			rec.Values[col.Label] = g.date.Format("2006-01-02")
		default:
			v, ok := g.values[col.Metric]
			if !ok {
				rec.Values[col.Label] = nil
				continue
			}
			metric, _ := cat.Lookup(col.Metric)
			rec.Values[col.Label] = coerceValue(v, metric.Type)
		}
	}

	return rec
}

var trailingZerosPattern = regexp.MustCompile(`\.0+$`)

// coerceValue applies the typed post-fetch coercion the wire format
// requires: integer columns drop a trailing ".0+" before parsing, text
// columns lose their JSON-encoded surrounding quotes, jsonArray/jsonObject
// columns are parsed with an empty-array fallback on failure, and the
// literal token "null" (however it reached here) always maps to nil.
func coerceValue(raw any, t catalog.SemanticType) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if s == "null" {
		return nil
	}

	switch t {
	case catalog.Int:
		trimmed := trailingZerosPattern.ReplaceAllString(s, "")
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil
		}
		return n
	case catalog.Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return f
	case catalog.Text, catalog.Timestamp:
		return strings.Trim(s, `"`)
	case catalog.JSONArray:
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err != nil {
			return []any{}
		}
		return arr
	case catalog.JSONObject:
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err != nil {
			return []any{}
		}
		return obj
	default:
		return s
	}
}
