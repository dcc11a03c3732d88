// ABOUTME: Response DTOs for the unified search endpoint
// ABOUTME: Provides the wire shape consumed by the frontend

package responses

// ResultItem represents one ranked search result in API responses
type ResultItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Provider  string   `json:"provider"`
	URL       string   `json:"url"`
	Views     int64    `json:"views"`
	Category  string   `json:"category"`
	Thumbnail string   `json:"thumbnail"`
	Summary   string   `json:"summary"`
	Rating    int      `json:"rating"`
	Reviews   []string `json:"reviews"`
	CreatedAt string   `json:"createdAt"`
}

// ErrorResponse represents an error body
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
