// Package apierr defines the closed error taxonomy shared by the data and
// lookup services. Every member carries the HTTP status it maps to and a
// human-readable message; none of them ever wrap an underlying driver or
// system error, so a handler can safely echo err.Error() to the client.
package apierr

import (
	"fmt"
	"net/http"
)

// APIError is any error in the closed taxonomy. Handlers type-assert
// against this interface to decide between the typed error envelope and
// the generic 500 fallback.
type APIError interface {
	error
	Status() int
}

type base struct {
	status  int
	message string
}

func (b base) Error() string { return b.message }
func (b base) Status() int   { return b.status }

// InvalidQueryParameter reports an unknown filter identifier, with a
// suggested correction computed from the catalog.
func InvalidQueryParameter(name, operator, value, closestMatch string) APIError {
	return base{
		status: http.StatusUnprocessableEntity,
		message: fmt.Sprintf(
			"Query parameter '%s' (%s %s %s) is invalid. Did you mean '%s'?",
			name, name, operator, value, closestMatch,
		),
	}
}

// InvalidStructureParameter reports an unknown metric named in the
// client-supplied structure.
func InvalidStructureParameter(name, structureFormat, closestMatch string) APIError {
	return base{
		status: http.StatusNotFound,
		message: fmt.Sprintf(
			"Invalid parameter '%s' in the requested %s structure. Did you mean '%s'?",
			name, structureFormat, closestMatch,
		),
	}
}

// InvalidStructure reports a structure that is not a flat mapping/sequence,
// or otherwise fails to parse.
func InvalidStructure() APIError {
	return base{
		status: http.StatusExpectationFailed,
		message: "Invalid structure. The structure must be a flat (non-nested) JSON object. " +
			"Make sure you use double quotation marks in the structure.",
	}
}

// IncorrectQueryValueType reports a value that cannot be coerced to the
// semantic type the catalog declares for its identifier.
func IncorrectQueryValueType(expression, expectation, actual string) APIError {
	return base{
		status: http.StatusNotAcceptable,
		message: fmt.Sprintf(
			"The value in query expression '%s' is invalid. Expected a %s value, "+
				"got '%s' instead. See the API documentation for additional information.",
			expression, expectation, actual,
		),
	}
}

// ValueNotAcceptable reports a value that does not match the pattern
// required for its semantic type.
func ValueNotAcceptable(expression, key, pattern string) APIError {
	return base{
		status: http.StatusExpectationFailed,
		message: fmt.Sprintf(
			"The value in query expression '%s' does not match the expected pattern. "+
				"The value for '%s' must match the regular expression pattern '%s'. "+
				"See the API documentation for additional information.",
			expression, key, pattern,
		),
	}
}

// ExceedsMaxParameters reports more than the allowed number of predicates.
func ExceedsMaxParameters(maxParams, currentTotal int, parameters string) APIError {
	return base{
		status: http.StatusRequestEntityTooLarge,
		message: fmt.Sprintf(
			"Number of query parameters exceeds the maximum of %d allowed. "+
				"Current query includes %d parameters: %s",
			maxParams, currentTotal, parameters,
		),
	}
}

// StructureTooLarge reports a structure with more than the allowed number
// of metrics.
func StructureTooLarge(maxAllowed, currentCount int) APIError {
	return base{
		status: http.StatusRequestEntityTooLarge,
		message: fmt.Sprintf(
			"You may only request a maximum of %d metrics per request. "+
				"Current number of metrics in your structure: %d - please reduce "+
				"the number of metrics and try again.",
			maxAllowed, currentCount,
		),
	}
}

// RequestTooLarge reports too many of a restricted parameter, e.g. more
// than one date-equality predicate.
func RequestTooLarge(allowedMax int, paramName string) APIError {
	return base{
		status: http.StatusRequestEntityTooLarge,
		message: fmt.Sprintf(
			"You may only include %d %s per request. Please see the API "+
				"documentation for additional information.",
			allowedMax, paramName,
		),
	}
}

// InvalidQuery reports an empty or malformed filter expression.
func InvalidQuery() APIError {
	return base{
		status: http.StatusPreconditionFailed,
		message: "Invalid Query: the query is either empty or does not conform to the " +
			"correct pattern. See the API documentation for additional information.",
	}
}

// UnauthorisedRequest reports a filter value outside a configured allow-list.
func UnauthorisedRequest(name, operator, value string) APIError {
	return base{
		status: http.StatusUnauthorized,
		message: fmt.Sprintf(
			"Request for unauthorised access to value '%s' (%s %s %s) is denied.",
			value, name, operator, value,
		),
	}
}

// InvalidFormat reports latestBy combined with an unsupported format.
func InvalidFormat() APIError {
	return base{
		status: http.StatusBadRequest,
		message: "Invalid format: 'latestBy' parameter can only be used when " +
			"'format=json' or 'format=xml'.",
	}
}

// BadPagination reports latestBy combined with page.
func BadPagination() APIError {
	return base{
		status: http.StatusBadRequest,
		message: "Bad pagination: 'latestBy' parameter cannot be used in conjunction " +
			"with the 'page' parameter.",
	}
}

// MissingFilter reports a request lacking the mandatory areaType predicate.
func MissingFilter() APIError {
	return base{
		status: http.StatusBadRequest,
		message: "Missing filter: the 'areaType' filter is mandatory, but not defined.",
	}
}

// NoContent signals an empty result set. It is handled specially by the
// finisher (204, no error envelope) rather than surfaced as an error body.
func NoContent() APIError {
	return base{
		status:  http.StatusNoContent,
		message: "The request was fulfilled. There is currently no data available.",
	}
}

// UnknownMetric reports a catalog miss during type coercion.
func UnknownMetric(name string) APIError {
	return base{
		status:  http.StatusUnprocessableEntity,
		message: fmt.Sprintf("Unknown metric '%s'.", name),
	}
}
