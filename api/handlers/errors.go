// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to the pinned HTTP error body shapes

package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"skillscope-api/api/dto/responses"
	"skillscope-api/core/errors"
)

// writeJSON serializes v to the response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to their HTTP status and body shape.
// Upstream failures carry the raw provider body as a detail field;
// everything else is a bare error message.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr    *errors.ValidationError
		configurationErr *errors.ConfigurationError
		upstreamErr      *errors.UpstreamError
	)

	switch {
	case stderrors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{Error: validationErr.Message})
	case stderrors.As(err, &configurationErr):
		writeJSON(w, http.StatusInternalServerError, responses.ErrorResponse{Error: configurationErr.Message})
	case stderrors.As(err, &upstreamErr):
		writeJSON(w, http.StatusBadGateway, responses.ErrorResponse{
			Error:  upstreamErr.Stage + " failed",
			Detail: upstreamErr.Detail,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, responses.ErrorResponse{Error: err.Error()})
	}
}
