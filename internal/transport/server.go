// Package transport wires the HTTP surface: routing, CORS, and the
// request/response state machine for the data and lookup endpoints.
package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/coerce"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/countcache"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/healthz"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/lookup"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/metrics"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/pgstore"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/planner"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/queryparse"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/respond"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/shaper"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/structure"
)

// sqlColumns maps the area/date filter identifiers to their long-table
// column names. Any other catalogued identifier used as a filter is
// rejected: filtering by metric value requires a self-join the planner
// does not build.
var sqlColumns = map[string]string{
	"areaType": "mr.area_type",
	"areaCode": "mr.area_code",
	"areaName": "mr.area_name",
	"date":     "mr.date",
}

// identityMetrics names the structure columns that are row attributes,
// not rows in the long-format metric table: they never appear in the
// metric = ANY($1) filter and never count toward nMetrics.
var identityMetrics = map[string]bool{
	"areaCode": true,
	"areaName": true,
	"areaType": true,
	"date":     true,
}

// dateIdentifiers are the latestBy values that resolve MAX(date) across
// every requested metric, rather than against one named metric's rows.
var dateIdentifiers = map[string]bool{
	"date":             true,
	"releasetimestamp": true,
}

// Server holds the dependencies the data endpoint's handler closes over.
type Server struct {
	catalog             *catalog.Catalog
	store               *pgstore.Store
	cache               *countcache.Cache
	restrictedAreaTypes map[string]bool
	pageSize            int
	selfURL             string
	serverLocation      string
	metrics             *metrics.Metrics
}

// NewServer builds a Server ready to have its router mounted.
func NewServer(cat *catalog.Catalog, store *pgstore.Store, cache *countcache.Cache, restrictedAreaTypes map[string]bool, pageSize int, selfURL, serverLocation string, m *metrics.Metrics) *Server {
	return &Server{
		catalog:             cat,
		store:               store,
		cache:               cache,
		restrictedAreaTypes: restrictedAreaTypes,
		pageSize:            pageSize,
		selfURL:             selfURL,
		serverLocation:      serverLocation,
		metrics:             m,
	}
}

// Router builds the mux with CORS applied, matching the teacher's pattern
// of wrapping the router rather than using per-route middleware for it.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/v1/data", s.handleData).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/v1/lookup", lookup.Handler(lookup.NewPGQuerier(s.store.DB()))).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz.Handler(s.store)).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/metrics", metrics.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	})

	return c.Handler(s.loggingMiddleware(r))
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.metrics != nil {
			s.metrics.ObserveRequest(r.URL.Path, time.Since(start))
		}
	})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	q, err := queryparse.Parse(r.URL.Query(), s.restrictedAreaTypes, s.catalog)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}

	st, err := structure.Parse(q.Structure, s.catalog)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}

	predicates, areaType, err := s.buildPredicates(q.Filters)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}

	releaseTimestamp, err := s.store.LatestRelease(r.Context())
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}

	partitionID := planner.PartitionID(areaType, releaseTimestamp)
	dataMetrics := nonIdentityMetrics(st.Metrics())
	metricArgs := metricArray(dataMetrics)
	rawFilters := filterTriples(q.Filters)

	if q.LatestBy != "" {
		s.handleLatestBy(w, r, q, st, predicates, partitionID, metricArgs, rawFilters, releaseTimestamp)
		return
	}

	nMetrics := len(dataMetrics)
	if nMetrics == 0 {
		nMetrics = 1
	}
	limit := s.pageSize * nMetrics

	countKey := countcache.Key("count", partitionID, cacheArgs(q.Filters))
	total, ok := s.cache.Get(countKey)
	if !ok {
		countPlan := planner.Count(partitionID, metricArgs, predicates)
		total, err = s.store.Count(r.Context(), countPlan)
		if err != nil {
			respond.WriteError(w, err, s.serverLocation)
			return
		}
		s.cache.Put(countKey, total)
	}

	if total == 0 {
		respond.WriteError(w, apierr.NoContent(), s.serverLocation)
		return
	}

	offset := limit * (q.Page - 1)
	dataPlan := planner.Data(partitionID, metricArgs, predicates, "mr.area_code, mr.date DESC", limit, offset)
	rows, err := s.store.Query(r.Context(), dataPlan)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}

	records := shaper.Pivot(rows, st, s.catalog)
	pagination := respond.BuildPagination(s.selfURL+r.URL.Path, q.Page, limit, int(total))
	payload := respond.NewRequestPayload(q.Structure, rawFilters, q.Page)
	env := respond.NewEnvelope(records, int(total), payload, &pagination)

	if err := respond.WriteSuccess(w, r, q.Format, env, releaseTimestamp, s.serverLocation); err != nil {
		respond.WriteError(w, err, s.serverLocation)
	}
}

// handleLatestBy resolves MAX(date) for q.LatestBy within the already
// bound predicates, then re-queries with that date pinned as an
// additional predicate. Pagination and the count cache are bypassed
// entirely, matching the state machine's "latest" template.
func (s *Server) handleLatestBy(w http.ResponseWriter, r *http.Request, q *queryparse.Query, st *structure.Structure, predicates []planner.Predicate, partitionID string, metricArgs []any, rawFilters []respond.FilterTriple, releaseTimestamp time.Time) {
	latestByMetrics := metricArgs
	if !dateIdentifiers[strings.ToLower(q.LatestBy)] {
		latestByMetrics = []any{q.LatestBy}
	}

	latestDatePlan := planner.LatestDate(partitionID, latestByMetrics, predicates)
	latestDate, err := s.store.LatestDate(r.Context(), latestDatePlan)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}
	if latestDate.IsZero() {
		respond.WriteError(w, apierr.NoContent(), s.serverLocation)
		return
	}

	latestPredicates := make([]planner.Predicate, len(predicates), len(predicates)+1)
	copy(latestPredicates, predicates)
	if n := len(latestPredicates); n > 0 && latestPredicates[n-1].Connector == "" {
		latestPredicates[n-1].Connector = "AND"
	}
	latestPredicates = append(latestPredicates, planner.Predicate{
		Column:   "mr.date",
		Operator: "=",
		Bound:    latestDate,
	})

	limit := respond.MaxItemsPerResponse * len(metricArgs)
	if limit == 0 {
		limit = respond.MaxItemsPerResponse
	}
	dataPlan := planner.Data(partitionID, metricArgs, latestPredicates, "mr.area_code, mr.date DESC", limit, 0)
	rows, err := s.store.Query(r.Context(), dataPlan)
	if err != nil {
		respond.WriteError(w, err, s.serverLocation)
		return
	}
	if len(rows) == 0 {
		respond.WriteError(w, apierr.NoContent(), s.serverLocation)
		return
	}

	records := shaper.Pivot(rows, st, s.catalog)
	payload := respond.NewLatestByRequestPayload(q.Structure, rawFilters, q.LatestBy)
	env := respond.NewEnvelope(records, len(records), payload, nil)

	if err := respond.WriteSuccess(w, r, q.Format, env, releaseTimestamp, s.serverLocation); err != nil {
		respond.WriteError(w, err, s.serverLocation)
	}
}

func nonIdentityMetrics(metrics []string) []string {
	out := make([]string, 0, len(metrics))
	for _, m := range metrics {
		if !identityMetrics[m] {
			out = append(out, m)
		}
	}
	return out
}

func metricArray(metrics []string) []any {
	out := make([]any, len(metrics))
	for i, m := range metrics {
		out[i] = m
	}
	return out
}

func filterTriples(filters []queryparse.Filter) []respond.FilterTriple {
	out := make([]respond.FilterTriple, len(filters))
	for i, f := range filters {
		out[i] = respond.FilterTriple{Identifier: f.Name, Operator: f.Operator, Value: f.Value}
	}
	return out
}

func cacheArgs(filters []queryparse.Filter) map[string]string {
	out := make(map[string]string, len(filters))
	for _, f := range filters {
		out[f.Name+f.Operator] = f.Value
	}
	return out
}

func (s *Server) buildPredicates(filters []queryparse.Filter) ([]planner.Predicate, string, error) {
	predicates := make([]planner.Predicate, 0, len(filters))
	areaType := ""

	for _, f := range filters {
		column, ok := sqlColumns[f.Name]
		if !ok {
			if s.catalog.Has(f.Name) {
				return nil, "", apierr.InvalidQuery()
			}
			closest := apierr.ClosestMatch(f.Name, s.catalog.Names())
			return nil, "", apierr.InvalidQueryParameter(f.Name, f.Operator, f.Value, closest)
		}

		metricType, _ := s.catalog.Lookup(f.Name)
		value, err := coerce.Convert(f.Name, f.Operator, f.Value, metricType.Type, f.Expression())
		if err != nil {
			return nil, "", err
		}

		predicates = append(predicates, planner.Predicate{
			Column:    column,
			Operator:  normalizedOperator(f.Operator),
			Bound:     value.Bound,
			Connector: f.Connector,
		})

		if strings.EqualFold(f.Name, "areaType") {
			areaType = value.Canonical
		}
	}

	return predicates, areaType, nil
}

func normalizedOperator(op string) string {
	return op
}
