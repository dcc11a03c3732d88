// ABOUTME: HTTP handler for the unified educational search endpoint
// ABOUTME: Parses query parameters, invokes the aggregation service, writes JSON

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillscope-api/api/dto/mappers"
	"skillscope-api/api/dto/requests"
	"skillscope-api/core/domain"
)

// SearchService defines the aggregation operations the handler needs
type SearchService interface {
	Search(ctx context.Context, query string, max int) ([]domain.Result, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	service SearchService
}

// NewSearchHandler creates a new search handler instance
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers the search routes on the router
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/search", h.Search)
}

// Search handles GET /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := requests.ParseSearchRequest(r.URL.Query())
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	results, err := h.service.Search(r.Context(), req.Query, req.Max)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToResultItems(results))
}
