// ABOUTME: Request DTO for the unified search endpoint
// ABOUTME: Provides validation and default values for incoming query parameters

package requests

import (
	"net/url"
	"strconv"

	"skillscope-api/core/errors"
)

// DefaultMax is the number of results returned when max is omitted
const DefaultMax = 20

// SearchRequest represents the query parameters of a search call
type SearchRequest struct {
	// Query is the raw search term
	Query string

	// Max is the maximum number of results to return
	Max int
}

// ParseSearchRequest builds a SearchRequest from URL query parameters.
// A missing or non-numeric max falls back to the default rather than
// failing the request.
func ParseSearchRequest(values url.Values) SearchRequest {
	req := SearchRequest{
		Query: values.Get("q"),
		Max:   DefaultMax,
	}

	if raw := values.Get("max"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			req.Max = n
		}
	}

	return req
}

// Validate checks that required parameters are present
func (r SearchRequest) Validate() error {
	if r.Query == "" {
		return &errors.ValidationError{Field: "q", Message: "missing query q"}
	}
	return nil
}
