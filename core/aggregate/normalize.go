// ABOUTME: Normalization of raw provider items into the unified result model
// ABOUTME: Applies the educational relevance filter to video candidates

package aggregate

import (
	"strconv"
	"strings"

	"skillscope-api/core/domain"
	"skillscope-api/core/providers/udemy"
	"skillscope-api/core/providers/youtube"
)

// educationalKeywords is a heuristic relevance filter, not a
// correctness-critical predicate. The list is a product choice and is
// preserved exactly.
var educationalKeywords = []string{
	"tutorial",
	"course",
	"learn",
	"lesson",
	"guide",
	"how to",
	"curriculum",
	"course outline",
	"beginner",
}

// isEducational reports whether title+description mention at least one
// educational keyword, case-insensitively
func isEducational(title, description string) bool {
	haystack := strings.ToLower(title + " " + description)
	for _, keyword := range educationalKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

// videoResult maps a raw video to the unified result shape
func videoResult(v youtube.Video) domain.Result {
	return domain.Result{
		ID:        v.ID,
		Title:     v.Snippet.Title,
		Provider:  domain.ProviderYouTube,
		URL:       "https://www.youtube.com/watch?v=" + v.ID,
		Views:     v.Views(),
		Category:  domain.CategoryLearning,
		Thumbnail: v.Snippet.BestThumbnail(),
		Summary:   domain.Truncate(domain.FirstLine(v.Snippet.Description), domain.SummaryMaxLen),
		CreatedAt: domain.TimestampOrNow(v.Snippet.PublishedAt),
	}
}

// courseResult maps a raw course to the unified result shape. No
// relevance filter applies to courses.
func courseResult(c udemy.Course) domain.Result {
	return domain.Result{
		ID:        strconv.FormatInt(c.ID, 10),
		Title:     c.Title,
		Provider:  domain.ProviderUdemy,
		URL:       courseURL(c.URL),
		Views:     c.NumSubscribers,
		Category:  domain.CategoryLearning,
		Thumbnail: c.BestImage(),
		Summary:   domain.Truncate(c.Headline, domain.SummaryMaxLen),
		CreatedAt: domain.TimestampOrNow(c.Created),
	}
}

// courseURL absolutizes the provider's course path when it is relative
func courseURL(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return "https://www.udemy.com" + raw
	}
	return raw
}
