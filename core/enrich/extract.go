// ABOUTME: Pure text-extraction heuristic for model output
// ABOUTME: Pulls the first brace-delimited JSON substring out of free text

package enrich

import (
	"encoding/json"
	"strings"
)

// Enrichment is the AI-generated summary and quality rating for one result
type Enrichment struct {
	Summary string `json:"summary"`
	Rating  int    `json:"rating"`
}

// ExtractEnrichment scans free-form model output for a brace-delimited
// JSON substring and parses it. The model is not guaranteed to emit valid
// structured output, so the second return value reports whether anything
// usable was found. The scan spans from the first '{' to the last '}' so
// nested braces inside the summary survive.
func ExtractEnrichment(text string) (Enrichment, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return Enrichment{}, false
	}

	var e Enrichment
	if err := json.Unmarshal([]byte(text[start:end+1]), &e); err != nil {
		return Enrichment{}, false
	}
	return e, true
}
