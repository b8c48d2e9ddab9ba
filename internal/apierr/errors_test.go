package apierr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  APIError
		want int
	}{
		{"InvalidQueryParameter", InvalidQueryParameter("ara", "=", "england", "areaType"), http.StatusUnprocessableEntity},
		{"InvalidStructureParameter", InvalidStructureParameter("dat", "mapping", "date"), http.StatusNotFound},
		{"InvalidStructure", InvalidStructure(), http.StatusExpectationFailed},
		{"IncorrectQueryValueType", IncorrectQueryValueType("date=2020", "timestamp", "2020"), http.StatusNotAcceptable},
		{"ValueNotAcceptable", ValueNotAcceptable("areaCode=1", "areaCode", "^[A-Z0-9]{9}$"), http.StatusExpectationFailed},
		{"ExceedsMaxParameters", ExceedsMaxParameters(5, 6, "a,b,c,d,e,f"), http.StatusRequestEntityTooLarge},
		{"StructureTooLarge", StructureTooLarge(8, 9), http.StatusRequestEntityTooLarge},
		{"RequestTooLarge", RequestTooLarge(1, "date parameters"), http.StatusRequestEntityTooLarge},
		{"InvalidQuery", InvalidQuery(), http.StatusPreconditionFailed},
		{"UnauthorisedRequest", UnauthorisedRequest("areaType", "=", "msoa"), http.StatusUnauthorized},
		{"InvalidFormat", InvalidFormat(), http.StatusBadRequest},
		{"BadPagination", BadPagination(), http.StatusBadRequest},
		{"MissingFilter", MissingFilter(), http.StatusBadRequest},
		{"NoContent", NoContent(), http.StatusNoContent},
		{"UnknownMetric", UnknownMetric("bogus"), http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Status())
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestInvalidQueryParameterMessageIncludesSuggestion(t *testing.T) {
	err := InvalidQueryParameter("ara", "=", "england", "areaType")
	assert.Contains(t, err.Error(), "areaType")
	assert.Contains(t, err.Error(), "ara")
}

func TestAPIErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = InvalidQuery()
	assert.Error(t, err)
}
