// Package lookup implements the area-reference lookup service: a simpler,
// single-partition sibling of the main data endpoint that resolves an
// area's hierarchy (parent, children, sibling destinations) rather than
// its metric history.
package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/respond"
)

// Fields is the closed set of attributes the lookup structure may
// reference, mirroring the data catalog but scoped to area hierarchy
// rather than metrics.
var Fields = map[string]bool{
	"type":         true,
	"areaType":     true,
	"areaCode":     true,
	"areaName":     true,
	"destinations": true,
	"parent":       true,
	"children":     true,
}

// DefaultStructure is used when the client omits the structure parameter.
var DefaultStructure = []string{"areaType", "areaCode", "areaName", "destinations", "parent", "children"}

// Record is one area's hierarchy entry.
type Record struct {
	Type         string          `json:"type"`
	AreaType     string          `json:"areaType"`
	AreaCode     string          `json:"areaCode"`
	AreaName     string          `json:"areaName"`
	Destinations json.RawMessage `json:"destinations"`
	Parent       json.RawMessage `json:"parent"`
	Children     json.RawMessage `json:"children"`
}

// Querier resolves area hierarchy rows, backed by the same Postgres pool
// the data endpoint uses (the upstream Cosmos container this service
// originally read from has no equivalent in this stack).
type Querier interface {
	LookupAreas(ctx context.Context, areaType, areaCode string) ([]Record, error)
}

// Handler returns the /v1/lookup handler.
func Handler(q Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaType := r.URL.Query().Get("areaType")
		areaCode := r.URL.Query().Get("areaCode")

		if areaType == "" && areaCode == "" {
			respond.WriteError(w, apierr.MissingFilter(), "")
			return
		}

		records, err := q.LookupAreas(r.Context(), areaType, areaCode)
		if err != nil {
			respond.WriteError(w, err, "")
			return
		}

		if len(records) == 0 {
			respond.WriteError(w, apierr.NoContent(), "")
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(records)
	}
}

func nullableJSON(v sql.NullString) json.RawMessage {
	if !v.Valid || v.String == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(v.String)
}
