// ABOUTME: Aggregation service orchestrating provider search, ranking and enrichment
// ABOUTME: Implements the unified educational search pipeline behind the HTTP layer

package aggregate

import (
	"context"
	"sort"

	"skillscope-api/core/domain"
	"skillscope-api/core/enrich"
	coreerrors "skillscope-api/core/errors"
	"skillscope-api/core/interfaces"
	"skillscope-api/core/providers/udemy"
	"skillscope-api/core/providers/youtube"
	"skillscope-api/pkg/concurrency"
)

const (
	// DefaultMaxResults applies when the caller omits max
	DefaultMaxResults = 20

	// enrichConcurrency bounds simultaneous gateway calls
	enrichConcurrency = 5
)

// VideoProvider supplies searchable video metadata and statistics.
// Search failures here are mandatory-path failures.
type VideoProvider interface {
	Configured() bool
	Search(ctx context.Context, query string, max int) ([]string, error)
	Details(ctx context.Context, ids []string) ([]youtube.Video, error)
}

// CourseProvider supplies course results; it degrades internally and
// never returns an error.
type CourseProvider interface {
	Configured() bool
	Search(ctx context.Context, query string, max int) []udemy.Course
}

// Enricher produces a summary and rating for one result; it never fails
type Enricher interface {
	Analyze(ctx context.Context, title, summary string) enrich.Enrichment
}

// Service handles unified educational search
type Service struct {
	deps     interfaces.Dependencies
	videos   VideoProvider
	courses  CourseProvider
	enricher Enricher
}

// NewService creates a new aggregation service instance
func NewService(deps interfaces.Dependencies, videos VideoProvider, courses CourseProvider, enricher Enricher) *Service {
	return &Service{
		deps:     deps,
		videos:   videos,
		courses:  courses,
		enricher: enricher,
	}
}

// Search runs the full pipeline: validate, query both providers, filter
// and normalize, rank by popularity, truncate to max, enrich.
func (s *Service) Search(ctx context.Context, query string, max int) ([]domain.Result, error) {
	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "q", Message: "missing query q"}
	}
	if max <= 0 {
		max = DefaultMaxResults
	}

	if !s.videos.Configured() {
		return nil, &coreerrors.ConfigurationError{Message: "YOUTUBE_API_KEY not set"}
	}

	// The course stage is independent of the video stage; run it
	// concurrently. It degrades internally and never errors.
	courseCh := make(chan []udemy.Course, 1)
	go func() {
		if !s.courses.Configured() {
			courseCh <- nil
			return
		}
		courseCh <- s.courses.Search(ctx, query, max)
	}()

	ids, err := s.videos.Search(ctx, query, max)
	if err != nil {
		return nil, err
	}

	// Zero candidates is a valid terminal state, not an error
	if len(ids) == 0 {
		return []domain.Result{}, nil
	}

	videos, err := s.videos.Details(ctx, ids)
	if err != nil {
		return nil, err
	}

	courses := <-courseCh

	results := make([]domain.Result, 0, len(videos)+len(courses))
	for _, v := range videos {
		if !isEducational(v.Snippet.Title, v.Snippet.Description) {
			continue
		}
		results = append(results, videoResult(v))
	}
	for _, c := range courses {
		results = append(results, courseResult(c))
	}

	// Popularity ranking; the stable sort preserves concatenation
	// order between equal-view items
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Views > results[j].Views
	})
	if len(results) > max {
		results = results[:max]
	}

	s.enrichAll(ctx, results)

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Search completed", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
	}
	return results, nil
}

// enrichAll mutates summary and rating in place; ranking order and
// membership never change.
func (s *Service) enrichAll(ctx context.Context, results []domain.Result) {
	_ = concurrency.Map(ctx, len(results), enrichConcurrency, func(ctx context.Context, i int) error {
		e := s.enricher.Analyze(ctx, results[i].Title, results[i].Summary)
		results[i].Summary = e.Summary
		results[i].Rating = e.Rating
		return nil
	})
}
