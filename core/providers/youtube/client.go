// ABOUTME: YouTube Data API client for educational video search
// ABOUTME: Provides search and batched detail lookup through the injected HTTP client

package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	coreerrors "skillscope-api/core/errors"
	"skillscope-api/core/interfaces"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxPageSize is the provider's search page-size ceiling
	maxPageSize = 50

	// overFetchFactor over-requests candidates so the educational filter
	// still leaves enough items after dropping non-matches
	overFetchFactor = 2
)

// eduTerms biases provider ranking toward instructional content
const eduTerms = "(tutorial OR course OR learn OR lesson OR beginners)"

// Client calls the YouTube Data API v3
type Client struct {
	deps    interfaces.Dependencies
	apiKey  string
	baseURL string
}

// NewClient creates a YouTube client. An empty apiKey produces an
// unconfigured client; callers check Configured before searching.
func NewClient(deps interfaces.Dependencies, apiKey string) *Client {
	return &Client{
		deps:    deps,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// Configured reports whether the mandatory API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Search returns candidate video IDs for the query, augmented with
// educational disambiguation terms. Up to min(max*2, 50) medium-duration
// videos are requested.
func (c *Client) Search(ctx context.Context, query string, max int) ([]string, error) {
	limit := max * overFetchFactor
	if limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query+" "+eduTerms)
	params.Set("type", "video")
	params.Set("videoDuration", "medium")
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/search?"+params.Encode(), "YouTube search")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "parse YouTube search response")
	}

	ids := make([]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// Details fetches snippet, statistics and content metadata for all
// candidate IDs in a single batched call.
func (c *Client) Details(ctx context.Context, ids []string) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/videos?"+params.Encode(), "YouTube videos")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Items []Video `json:"items"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "parse YouTube videos response")
	}
	return parsed.Items, nil
}

// get performs a GET and returns the body, converting transport errors
// and non-200 statuses into UpstreamError with the raw body as detail.
func (c *Client) get(ctx context.Context, url, stage string) ([]byte, error) {
	resp, err := c.deps.HTTPClient.Get(ctx, url, nil)
	if err != nil {
		return nil, &coreerrors.UpstreamError{Stage: stage, Detail: err.Error()}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.UpstreamError{Stage: stage, StatusCode: resp.StatusCode(), Detail: err.Error()}
	}

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.UpstreamError{
			Stage:      stage,
			StatusCode: resp.StatusCode(),
			Detail:     string(body),
		}
	}
	return body, nil
}

// Video is the raw item shape returned by the videos endpoint
type Video struct {
	ID         string     `json:"id"`
	Snippet    Snippet    `json:"snippet"`
	Statistics Statistics `json:"statistics"`
}

// Snippet holds the descriptive metadata of a video
type Snippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishedAt string     `json:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// Statistics holds view counters; the API encodes counts as strings
type Statistics struct {
	ViewCount string `json:"viewCount"`
}

// Thumbnails lists the available resolutions
type Thumbnails struct {
	High    Thumbnail `json:"high"`
	Default Thumbnail `json:"default"`
}

// Thumbnail is a single thumbnail rendition
type Thumbnail struct {
	URL string `json:"url"`
}

// Views parses the view count, defaulting to 0 when absent or non-numeric
func (v Video) Views() int64 {
	n, err := strconv.ParseInt(v.Statistics.ViewCount, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// BestThumbnail returns the highest available resolution, falling back
// from high to default, else empty.
func (s Snippet) BestThumbnail() string {
	if s.Thumbnails.High.URL != "" {
		return s.Thumbnails.High.URL
	}
	return s.Thumbnails.Default.URL
}
