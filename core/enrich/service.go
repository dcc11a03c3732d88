// ABOUTME: AI enrichment service calling an OpenRouter-compatible chat gateway
// ABOUTME: Produces per-item summaries and ratings with a neutral default fallback

package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"skillscope-api/core/domain"
	"skillscope-api/core/interfaces"
	"skillscope-api/pkg/config"
)

const (
	defaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultRating is the neutral rating applied when enrichment is
	// disabled or fails
	DefaultRating = 3

	systemPrompt = "You are a helpful expert at analyzing educational content. Give short, focused summaries and quality ratings."

	refererHeader = "https://skillscope11.vercel.app"
	titleHeader   = "SkillScope"
)

// Service enriches results through a chat-completion gateway
type Service struct {
	deps     interfaces.Dependencies
	apiKey   string
	model    string
	endpoint string
}

// NewService creates an enrichment service. An empty API key switches
// Analyze to the default-value path with no network calls.
func NewService(deps interfaces.Dependencies, cfg config.EnrichmentConfig) *Service {
	return &Service{
		deps:     deps,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: defaultEndpoint,
	}
}

// Enabled reports whether the gateway credential is present
func (s *Service) Enabled() bool {
	return s.apiKey != ""
}

// Analyze returns a summary and 1-5 rating for one result. It never
// fails: any gateway or parse problem yields the original summary
// (truncated) with the neutral default rating.
func (s *Service) Analyze(ctx context.Context, title, summary string) Enrichment {
	fallback := Enrichment{
		Summary: domain.Truncate(summary, domain.SummaryMaxLen),
		Rating:  DefaultRating,
	}

	if !s.Enabled() {
		return fallback
	}

	content, err := s.complete(ctx, title, summary)
	if err != nil {
		s.warn("enrichment call failed", err.Error())
		return fallback
	}

	parsed, ok := ExtractEnrichment(content)
	if !ok {
		s.warn("enrichment output had no parseable object", content)
		return fallback
	}

	result := Enrichment{
		Summary: domain.Truncate(parsed.Summary, domain.SummaryMaxLen),
		Rating:  parsed.Rating,
	}
	if result.Summary == "" {
		result.Summary = fallback.Summary
	}
	if result.Rating < 1 || result.Rating > 5 {
		result.Rating = DefaultRating
	}
	return result
}

// complete issues one chat-completion request and returns the model text
func (s *Service) complete(ctx context.Context, title, summary string) (string, error) {
	userPrompt := fmt.Sprintf(
		"Analyze this educational video content and provide:\n"+
			"1. A concise 2-sentence summary\n"+
			"2. A quality rating from 1-5 stars based on educational value\n"+
			"Format: {summary: \"...\", rating: X}\n\n"+
			"Title: %s\nDescription: %s",
		title, summary)

	payload := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+s.apiKey)
	headers.Set("Content-Type", "application/json")
	headers.Set("HTTP-Referer", refererHeader)
	headers.Set("X-Title", titleHeader)

	resp, err := s.deps.HTTPClient.Post(ctx, s.endpoint, headers, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("gateway returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (s *Service) warn(msg, detail string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, map[string]interface{}{
			"provider": "openrouter",
			"detail":   detail,
		})
	}
}
