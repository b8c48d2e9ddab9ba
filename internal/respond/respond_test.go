package respond

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/apierr"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/shaper"
)

func record(values map[string]any, columns ...string) shaper.Record {
	return shaper.Record{Columns: columns, Values: values}
}

func TestWriteSuccessGzipsJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/data?filters=areaType=nation", nil)

	pagination := BuildPagination("/v1/data", 1, 100, 1)
	payload := NewRequestPayload(`["areaName"]`, nil, 1)
	env := NewEnvelope([]shaper.Record{record(map[string]any{"areaName": "England"}, "areaName")}, 1, payload, &pagination)
	releaseTimestamp := time.Date(2021, 3, 5, 12, 0, 0, 0, time.UTC)
	err := WriteSuccess(rec, req, "json", env, releaseTimestamp, "UK")
	require.NoError(t, err)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UK", rec.Header().Get("PHE-Server-Loc"))
	assert.Equal(t, "/v1/data?filters=areaType=nation", rec.Header().Get("Content-Location"))
	assert.Contains(t, rec.Header().Get("content-security-policy"), "default-src 'none'")

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer gz.Close()

	var decoded Envelope
	require.NoError(t, json.NewDecoder(gz).Decode(&decoded))
	assert.Equal(t, 1, decoded.Length)
}

func TestWriteSuccessOmitsPaginationInLatestByMode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/data?latestBy=date", nil)

	payload := NewLatestByRequestPayload(`["date"]`, nil, "date")
	env := NewEnvelope(nil, 0, payload, nil)
	require.NoError(t, WriteSuccess(rec, req, "json", env, time.Now(), ""))

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"pagination"`)
}

func TestWriteSuccessHeadReturnsNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/v1/data", nil)

	payload := NewRequestPayload("[]", nil, 1)
	env := NewEnvelope(nil, 0, payload, nil)
	require.NoError(t, WriteSuccess(rec, req, "json", env, time.Now(), ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWriteErrorUsesTaxonomyStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apierr.MissingFilter(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
}

func TestWriteErrorFallsBackToGenericMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, assertUnexpectedError{}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "An internal error occurred. Please try again later.", body.Response)
}

type assertUnexpectedError struct{}

func (assertUnexpectedError) Error() string { return "boom: leaked internal detail" }

func TestBuildPaginationLinks(t *testing.T) {
	p := BuildPagination("/v1/data", 2, 10, 25)
	assert.Equal(t, "/v1/data?page=2", p.Current)
	assert.Equal(t, "/v1/data?page=1", p.Previous)
	assert.Equal(t, "/v1/data?page=3", p.Next)
	assert.Equal(t, "/v1/data?page=3", p.Last)
}

func TestBuildPaginationFirstPageHasNoPrevious(t *testing.T) {
	p := BuildPagination("/v1/data", 1, 10, 25)
	assert.Empty(t, p.Previous)
	assert.NotEmpty(t, p.Next)
}

func TestWriteCSVUsesDeclaredColumnOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/data", nil)

	payload := NewRequestPayload(`["date","areaCode"]`, nil, 1)
	data := []shaper.Record{record(map[string]any{"date": "2021-03-05", "areaCode": "E92000001"}, "date", "areaCode")}
	env := NewEnvelope(data, 1, payload, nil)
	require.NoError(t, WriteSuccess(rec, req, "csv", env, time.Now(), ""))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer gz.Close()

	buf := make([]byte, 4096)
	n, _ := gz.Read(buf)
	assert.Contains(t, string(buf[:n]), "date,areaCode")
}
