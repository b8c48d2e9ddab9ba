// Package queryparse extracts structure, format, latestBy, pagination and
// filter predicates from the incoming request's query string, in that
// fixed order, and enforces the preconditions the planner relies on.
package queryparse

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
)

// MaxFilters bounds how many predicates a single request may carry.
const MaxFilters = 5

// DefaultStructure is used when the client omits the structure parameter.
const DefaultStructure = `["areaType","areaCode","areaName","date"]`

var allowedFormats = map[string]bool{"json": true, "csv": true, "xml": true}

var tokenPattern = regexp.MustCompile(
	`(?P<name>[A-Za-z][A-Za-z0-9]*)(?P<operator>!=|>=|<=|=|>|<)(?P<value>[^;|]+)(?P<connector>;|\||$)`,
)

// Filter is one "name operator value" predicate extracted from the
// filters parameter. Connector is the connector that followed it on the
// wire ("AND"/"OR"); the last filter in the chain carries "".
type Filter struct {
	Name      string
	Operator  string
	Value     string
	Connector string
}

// Expression renders the filter the way it appeared on the wire, for use
// in error messages.
func (f Filter) Expression() string {
	return f.Name + f.Operator + f.Value
}

// Query is the fully extracted, but not yet type-checked, request.
type Query struct {
	Structure string
	Format    string
	LatestBy  string
	Page      int
	Filters   []Filter
}

// Parse extracts a Query from the request's query values.
// restrictedAreaTypes holds the lower-cased area-type values the caller is
// not authorised to request; a nil or empty map disables the check. cat
// validates the latestBy identifier against the metric catalog.
func Parse(values url.Values, restrictedAreaTypes map[string]bool, cat *catalog.Catalog) (*Query, error) {
	q := &Query{
		Structure: values.Get("structure"),
		Format:    "json",
		Page:      1,
	}
	if q.Structure == "" {
		q.Structure = DefaultStructure
	}

	if raw := values.Get("format"); raw != "" {
		lower := strings.ToLower(raw)
		if !allowedFormats[lower] {
			return nil, apierr.InvalidFormat()
		}
		q.Format = lower
	}

	q.LatestBy = values.Get("latestBy")
	if q.LatestBy != "" && !cat.Has(q.LatestBy) {
		closest := apierr.ClosestMatch(q.LatestBy, cat.Names())
		return nil, apierr.InvalidQueryParameter("latestBy", "=", q.LatestBy, closest)
	}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, apierr.BadPagination()
		}
		q.Page = n
	}

	if q.LatestBy != "" {
		if q.Format != "json" && q.Format != "xml" {
			return nil, apierr.InvalidFormat()
		}
		if values.Get("page") != "" {
			return nil, apierr.BadPagination()
		}
	}

	filters, err := parseFilters(values.Get("filters"))
	if err != nil {
		return nil, err
	}
	q.Filters = filters

	if len(q.Filters) > MaxFilters {
		names := make([]string, len(q.Filters))
		for i, f := range q.Filters {
			names[i] = f.Expression()
		}
		return nil, apierr.ExceedsMaxParameters(MaxFilters, len(q.Filters), strings.Join(names, ", "))
	}

	if !hasAreaType(q.Filters) {
		return nil, apierr.MissingFilter()
	}

	for _, f := range q.Filters {
		if strings.EqualFold(f.Name, "areaType") && restrictedAreaTypes[strings.ToLower(f.Value)] {
			return nil, apierr.UnauthorisedRequest(f.Name, f.Operator, f.Value)
		}
	}

	return q, nil
}

func hasAreaType(filters []Filter) bool {
	for _, f := range filters {
		if strings.EqualFold(f.Name, "areaType") {
			return true
		}
	}
	return false
}

func parseFilters(raw string) ([]Filter, error) {
	if raw == "" {
		return nil, apierr.InvalidQuery()
	}

	matches := tokenPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return nil, apierr.InvalidQuery()
	}

	filters := make([]Filter, 0, len(matches))
	cursor := 0
	names := tokenPattern.SubexpNames()

	for _, m := range matches {
		if m[0] != cursor {
			return nil, apierr.InvalidQuery()
		}

		groups := make(map[string]string, len(names))
		for i, name := range names {
			if name == "" || m[2*i] < 0 {
				continue
			}
			groups[name] = raw[m[2*i]:m[2*i+1]]
		}

		connector := ""
		switch groups["connector"] {
		case ";":
			connector = "AND"
		case "|":
			connector = "OR"
		}

		filters = append(filters, Filter{
			Name:      groups["name"],
			Operator:  groups["operator"],
			Value:     groups["value"],
			Connector: connector,
		})

		cursor = m[1]
	}

	if cursor != len(raw) {
		return nil, apierr.InvalidQuery()
	}

	return filters, nil
}
