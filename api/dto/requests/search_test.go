package requests

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"skillscope-api/core/errors"
)

func TestParseSearchRequest_Defaults(t *testing.T) {
	req := ParseSearchRequest(url.Values{"q": {"python"}})

	assert.Equal(t, "python", req.Query)
	assert.Equal(t, DefaultMax, req.Max)
}

func TestParseSearchRequest_ExplicitMax(t *testing.T) {
	req := ParseSearchRequest(url.Values{"q": {"go"}, "max": {"5"}})

	assert.Equal(t, 5, req.Max)
}

func TestParseSearchRequest_InvalidMaxFallsBack(t *testing.T) {
	tests := []struct {
		name string
		max  string
	}{
		{"non-numeric", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseSearchRequest(url.Values{"q": {"go"}, "max": {tt.max}})
			assert.Equal(t, DefaultMax, req.Max)
		})
	}
}

func TestValidate_MissingQuery(t *testing.T) {
	req := ParseSearchRequest(url.Values{})

	err := req.Validate()

	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, "missing query q", err.(*errors.ValidationError).Message)
}

func TestValidate_PresentQuery(t *testing.T) {
	req := SearchRequest{Query: "rust", Max: 10}

	assert.NoError(t, req.Validate())
}
