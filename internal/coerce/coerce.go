// Package coerce converts the raw string values carried by a URL query
// into the Go values and SQL fragments the query planner needs, and
// validates them against the pattern each semantic type requires.
package coerce

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
)

// DateLayout is the wire format for every date-valued filter and column.
const DateLayout = "2006-01-02"

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	areaCodePat  = regexp.MustCompile(`^[A-Za-z0-9]{9}$`)
)

// areaTypeAliases canonicalizes the handful of area-type spellings the
// public documentation has accepted historically onto the partition-id
// vocabulary the planner understands.
var areaTypeAliases = map[string]string{
	"nation":        "nation",
	"region":        "region",
	"nhsregion":     "nhsRegion",
	"nhs region":    "nhsRegion",
	"utla":          "utla",
	"ltla":          "ltla",
	"msoa":          "msoa",
	"nhstrust":      "nhsTrust",
	"nhs trust":     "nhsTrust",
	"overview":      "overview",
}

// Value is a coerced filter or structure value, carrying both the Go
// value bound into the prepared statement and the canonical string (the
// canonical areaType is what the partition id is computed from).
type Value struct {
	Bound     any
	Canonical string
}

// Convert validates raw against the semantic type catalogued for name and
// returns the bound value to place in the prepared statement. expression
// is the original "name op value" text, used only for error messages.
func Convert(name, operator, raw string, semType catalog.SemanticType, expression string) (Value, error) {
	switch strings.ToLower(name) {
	case "areatype":
		return convertAreaType(raw, expression)
	case "areacode":
		return convertAreaCode(raw, expression)
	case "areaname":
		return Value{Bound: strings.ToLower(raw), Canonical: strings.ToLower(raw)}, nil
	case "date", "releasetimestamp":
		return convertDate(raw, expression)
	}

	switch semType {
	case catalog.Int:
		return convertInt(raw, expression)
	case catalog.Float:
		return convertFloat(raw, expression)
	case catalog.Timestamp:
		return convertDate(raw, expression)
	default:
		return Value{Bound: raw, Canonical: raw}, nil
	}
}

func convertInt(raw, expression string) (Value, error) {
	if !intPattern.MatchString(raw) {
		return Value{}, apierr.IncorrectQueryValueType(expression, "int", raw)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Value{}, apierr.IncorrectQueryValueType(expression, "int", raw)
	}
	return Value{Bound: n, Canonical: raw}, nil
}

func convertFloat(raw, expression string) (Value, error) {
	if !floatPattern.MatchString(raw) {
		return Value{}, apierr.IncorrectQueryValueType(expression, "float", raw)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, apierr.IncorrectQueryValueType(expression, "float", raw)
	}
	return Value{Bound: f, Canonical: raw}, nil
}

func convertDate(raw, expression string) (Value, error) {
	if !datePattern.MatchString(raw) {
		return Value{}, apierr.IncorrectQueryValueType(expression, "date (YYYY-MM-DD)", raw)
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Value{}, apierr.IncorrectQueryValueType(expression, "date (YYYY-MM-DD)", raw)
	}
	return Value{Bound: t, Canonical: t.Format(DateLayout)}, nil
}

func convertAreaCode(raw, expression string) (Value, error) {
	upper := strings.ToUpper(raw)
	if !areaCodePat.MatchString(upper) {
		return Value{}, apierr.ValueNotAcceptable(expression, "areaCode", areaCodePat.String())
	}
	return Value{Bound: upper, Canonical: upper}, nil
}

func convertAreaType(raw, expression string) (Value, error) {
	canon, ok := areaTypeAliases[strings.ToLower(raw)]
	if !ok {
		return Value{}, apierr.ValueNotAcceptable(expression, "areaType", areaTypeList())
	}
	return Value{Bound: canon, Canonical: canon}, nil
}

func areaTypeList() string {
	names := make([]string, 0, len(areaTypeAliases))
	for k := range areaTypeAliases {
		names = append(names, k)
	}
	return fmt.Sprintf("one of %s", strings.Join(names, ", "))
}
