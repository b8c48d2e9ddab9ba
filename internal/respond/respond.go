// Package respond renders the final HTTP response: the JSON/CSV/XML
// envelope, pagination links, universal security headers, and gzip
// compression of every success body (error envelopes are written
// uncompressed).
package respond

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/shaper"
)

// MaxItemsPerResponse bounds how many records a single page may carry.
const MaxItemsPerResponse = 2500

var mediaTypes = map[string]string{
	"json": "application/vnd.PHE-COVID19.v1+json; charset=utf-8",
	"xml":  "application/vnd.PHE-COVID19.v1+json; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
}

// universalHeaders are set on every response, success or failure.
// PHE-Server-Loc is set separately by WriteUniversalHeaders since its
// value is read from the environment at startup, not a fixed constant.
var universalHeaders = map[string]string{
	"server":                    "PHE API Service (Unix)",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
	"x-frame-options":           "deny",
	"x-content-type-options":    "nosniff",
	"x-xss-protection":          "1; mode=block",
	"referrer-policy":           "origin-when-cross-origin, strict-origin-when-cross-origin",
	"content-security-policy":   "default-src 'none'; style-src 'self' 'unsafe-inline'",
	"x-phe-media-type":          "PHE-COVID19.v1",
}

// Pagination carries the link set describing where the client is in the
// result set and how to move within it.
type Pagination struct {
	Current  string
	Next     string
	Previous string
	First    string
	Last     string
}

// FilterTriple echoes one client-supplied filter predicate verbatim, for
// inclusion in requestPayload.filters.
type FilterTriple struct {
	Identifier string `json:"identifier" xml:"identifier"`
	Operator   string `json:"operator" xml:"operator"`
	Value      string `json:"value" xml:"value"`
}

// RequestPayload echoes the request that produced the envelope. Exactly
// one of Page or LatestBy is set: Page for the ordinary paginated mode,
// LatestBy when the request carried latestBy.
type RequestPayload struct {
	Structure json.RawMessage `json:"structure" xml:"structure"`
	Filters   []FilterTriple  `json:"filters" xml:"filters"`
	Page      *int            `json:"page,omitempty" xml:"page,omitempty"`
	LatestBy  *string         `json:"latestBy,omitempty" xml:"latestBy,omitempty"`
}

// NewRequestPayload builds the echo object for the ordinary paginated mode.
func NewRequestPayload(structureRaw string, filters []FilterTriple, page int) RequestPayload {
	return RequestPayload{
		Structure: json.RawMessage(structureRaw),
		Filters:   filters,
		Page:      &page,
	}
}

// NewLatestByRequestPayload builds the echo object for latestBy mode.
func NewLatestByRequestPayload(structureRaw string, filters []FilterTriple, latestBy string) RequestPayload {
	return RequestPayload{
		Structure: json.RawMessage(structureRaw),
		Filters:   filters,
		LatestBy:  &latestBy,
	}
}

// Envelope is the success response body. Pagination is omitted entirely
// in latestBy mode.
type Envelope struct {
	Length         int             `json:"length" xml:"length"`
	MaxPageLimit   int             `json:"maxPageLimit" xml:"maxPageLimit"`
	TotalRecords   int             `json:"totalRecords" xml:"totalRecords"`
	Data           []shaper.Record `json:"data" xml:"data"`
	RequestPayload RequestPayload  `json:"requestPayload" xml:"requestPayload"`
	Pagination     *PaginationJSON `json:"pagination,omitempty" xml:"pagination,omitempty"`
}

// PaginationJSON is the wire shape of Pagination; empty links are
// rendered as null rather than omitted, matching a client that always
// probes all five keys.
type PaginationJSON struct {
	Current  string  `json:"current" xml:"current"`
	Next     *string `json:"next" xml:"next"`
	Previous *string `json:"previous" xml:"previous"`
	First    string  `json:"first" xml:"first"`
	Last     string  `json:"last" xml:"last"`
}

func toPaginationJSON(p Pagination) PaginationJSON {
	out := PaginationJSON{Current: p.Current, First: p.First, Last: p.Last}
	if p.Next != "" {
		out.Next = &p.Next
	}
	if p.Previous != "" {
		out.Previous = &p.Previous
	}
	return out
}

// WriteUniversalHeaders sets the headers applied to every response.
// serverLocation is echoed as PHE-Server-Loc.
func WriteUniversalHeaders(w http.ResponseWriter, serverLocation string) {
	for k, v := range universalHeaders {
		w.Header().Set(k, v)
	}
	w.Header().Set("PHE-Server-Loc", serverLocation)
}

// WriteSuccess renders the envelope in the requested format, gzip
// compressed, with success-only caching headers. releaseTimestamp is the
// authoritative last-release time: it drives Last-Modified and, for CSV,
// the attachment filename. A HEAD request gets a bare 204 with headers
// only.
func WriteSuccess(w http.ResponseWriter, r *http.Request, format string, env Envelope, releaseTimestamp time.Time, serverLocation string) error {
	WriteUniversalHeaders(w, serverLocation)
	w.Header().Set("Content-Type", mediaTypes[format])
	w.Header().Set("Cache-Control", "public, max-age=90")
	w.Header().Set("Content-Location", "/v1/data?"+r.URL.RawQuery)
	w.Header().Set("Last-Modified", releaseTimestamp.UTC().Format(http.TimeFormat))
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Set("Vary", "Accept-Encoding")

	if format == "csv" {
		filename := fmt.Sprintf("data_%s.csv", releaseTimestamp.UTC().Format("2006-Jan-02"))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	w.WriteHeader(http.StatusOK)

	gz := gzip.NewWriter(w)
	defer gz.Close()

	switch format {
	case "csv":
		return writeCSV(gz, env)
	case "xml":
		return xml.NewEncoder(gz).Encode(env)
	default:
		return json.NewEncoder(gz).Encode(env)
	}
}

func writeCSV(w *gzip.Writer, env Envelope) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(env.Data) == 0 {
		return nil
	}

	header := env.Data[0].Columns
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range env.Data {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = csvValue(rec.Values[k])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func csvValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.20g", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// errorBody mirrors the {response, status_code, status} envelope every
// failure is wrapped in.
type errorBody struct {
	Response   string `json:"response"`
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
}

// WriteError renders err as the standard failure envelope. Errors outside
// the closed apierr taxonomy are coerced to a generic 500 with a fixed
// message so internal details never reach the client; the original error
// is logged instead.
func WriteError(w http.ResponseWriter, err error, serverLocation string) {
	WriteUniversalHeaders(w, serverLocation)
	w.Header().Set("Content-Type", mediaTypes["json"])

	status := http.StatusInternalServerError
	message := "An internal error occurred. Please try again later."

	if ae, ok := err.(apierr.APIError); ok {
		status = ae.Status()
		message = ae.Error()
	} else {
		log.Printf("internal error: %v", err)
	}

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Response:   message,
		StatusCode: status,
		Status:     strings.ToUpper(http.StatusText(status)),
	})
}

// BuildPagination derives the link set for a page of results. pageSize is
// the LIMIT used for the underlying data query (MAX_ITEMS_PER_RESPONSE
// scaled by metric count), not the raw per-page row count.
func BuildPagination(baseURL string, page, pageSize, totalRecords int) Pagination {
	lastPage := (totalRecords + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		Current: withPage(baseURL, page),
		First:   withPage(baseURL, 1),
		Last:    withPage(baseURL, lastPage),
	}
	if page > 1 {
		p.Previous = withPage(baseURL, page-1)
	}
	if page < lastPage {
		p.Next = withPage(baseURL, page+1)
	}

	return p
}

func withPage(baseURL string, page int) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", baseURL, sep, page)
}

// NewEnvelope assembles a response envelope from shaped records. A nil
// pagination omits the pagination field entirely, as required in
// latestBy mode.
func NewEnvelope(data []shaper.Record, totalRecords int, payload RequestPayload, pagination *Pagination) Envelope {
	env := Envelope{
		Length:         len(data),
		MaxPageLimit:   MaxItemsPerResponse,
		TotalRecords:   totalRecords,
		Data:           data,
		RequestPayload: payload,
	}
	if pagination != nil {
		j := toPaginationJSON(*pagination)
		env.Pagination = &j
	}
	return env
}
