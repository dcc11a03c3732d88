// ABOUTME: Domain model for normalized educational search results
// ABOUTME: Defines the unified item shape produced from all content providers

package domain

import (
	"strings"
	"time"
)

// Provider identifies the content platform a result came from
type Provider string

const (
	// ProviderYouTube tags results from the video platform
	ProviderYouTube Provider = "YouTube"

	// ProviderUdemy tags results from the course marketplace
	ProviderUdemy Provider = "Udemy"
)

// CategoryLearning is the fixed category assigned to every result
const CategoryLearning = "Learning"

// SummaryMaxLen is the maximum length of a result summary in runes
const SummaryMaxLen = 140

// Result is a normalized search result from any provider.
// ID, Title, Provider and URL are always populated (empty string when the
// source data is absent); numeric fields default to 0.
type Result struct {
	ID        string
	Title     string
	Provider  Provider
	URL       string
	Views     int64
	Category  string
	Thumbnail string
	Summary   string
	Rating    int
	CreatedAt string
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FirstLine returns the text before the first newline in s
func FirstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// TimestampOrNow returns ts unchanged when present, otherwise the current
// time in RFC3339. Provider timestamps are passed through as-is.
func TimestampOrNow(ts string) string {
	if ts != "" {
		return ts
	}
	return time.Now().UTC().Format(time.RFC3339)
}
