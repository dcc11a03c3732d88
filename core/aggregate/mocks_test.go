package aggregate

import (
	"context"
	"sync/atomic"

	"skillscope-api/core/enrich"
	"skillscope-api/core/providers/udemy"
	"skillscope-api/core/providers/youtube"
)

// mockVideoProvider is a mock implementation of the VideoProvider interface
type mockVideoProvider struct {
	configured   bool
	searchFunc   func(ctx context.Context, query string, max int) ([]string, error)
	detailsFunc  func(ctx context.Context, ids []string) ([]youtube.Video, error)
	searchCalls  int32
	detailsCalls int32
}

func (m *mockVideoProvider) Configured() bool { return m.configured }

func (m *mockVideoProvider) Search(ctx context.Context, query string, max int) ([]string, error) {
	atomic.AddInt32(&m.searchCalls, 1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, max)
	}
	return nil, nil
}

func (m *mockVideoProvider) Details(ctx context.Context, ids []string) ([]youtube.Video, error) {
	atomic.AddInt32(&m.detailsCalls, 1)
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, ids)
	}
	return nil, nil
}

// mockCourseProvider is a mock implementation of the CourseProvider interface
type mockCourseProvider struct {
	configured  bool
	searchFunc  func(ctx context.Context, query string, max int) []udemy.Course
	searchCalls int32
}

func (m *mockCourseProvider) Configured() bool { return m.configured }

func (m *mockCourseProvider) Search(ctx context.Context, query string, max int) []udemy.Course {
	atomic.AddInt32(&m.searchCalls, 1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, max)
	}
	return nil
}

// mockEnricher is a mock implementation of the Enricher interface
type mockEnricher struct {
	analyzeFunc  func(ctx context.Context, title, summary string) enrich.Enrichment
	analyzeCalls int32
}

func (m *mockEnricher) Analyze(ctx context.Context, title, summary string) enrich.Enrichment {
	atomic.AddInt32(&m.analyzeCalls, 1)
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, title, summary)
	}
	return enrich.Enrichment{Summary: summary, Rating: enrich.DefaultRating}
}

// video builds a raw video fixture with the given educational marker
func video(id, title, description string, views string) youtube.Video {
	return youtube.Video{
		ID: id,
		Snippet: youtube.Snippet{
			Title:       title,
			Description: description,
			PublishedAt: "2023-01-01T00:00:00Z",
		},
		Statistics: youtube.Statistics{ViewCount: views},
	}
}
