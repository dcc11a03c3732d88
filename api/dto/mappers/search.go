// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"skillscope-api/api/dto/responses"
	"skillscope-api/core/domain"
)

// ToResultItem converts a domain Result to a ResultItem DTO.
// Reviews is reserved for future use and always serializes as [].
func ToResultItem(r domain.Result) responses.ResultItem {
	return responses.ResultItem{
		ID:        r.ID,
		Title:     r.Title,
		Provider:  string(r.Provider),
		URL:       r.URL,
		Views:     r.Views,
		Category:  r.Category,
		Thumbnail: r.Thumbnail,
		Summary:   r.Summary,
		Rating:    r.Rating,
		Reviews:   []string{},
		CreatedAt: r.CreatedAt,
	}
}

// ToResultItems converts multiple domain Results to ResultItem DTOs.
// The returned slice is never nil so an empty set serializes as [].
func ToResultItems(results []domain.Result) []responses.ResultItem {
	items := make([]responses.ResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, ToResultItem(r))
	}
	return items
}
