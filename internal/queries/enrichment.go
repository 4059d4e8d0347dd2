package queries

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"chess-analytics-backend/internal/llm"
	"chess-analytics-backend/internal/records"
	"chess-analytics-backend/internal/shared/metrics"
	"chess-analytics-backend/internal/shared/telemetry"
)

const (
	maxInsights        = 5
	maxRecommendations = 4

	// Confidence assigned when a configured generator fails and the canned
	// answer is served as the fallback.
	fallbackConfidence = 0.70
)

// enrichment is the structured output extracted from generated text. The
// extraction is best-effort pattern matching over numbered and bulleted
// lines; callers should rely only on the fallback contract.
type enrichment struct {
	Summary         string
	Insights        []string
	Recommendations []string
}

// enrich calls the configured generator and augments the canned answer with
// its output. Any failure is absorbed: the canned answer is returned with
// the fixed fallback confidence and no error ever escapes.
func (s *Synthesizer) enrich(ctx context.Context, text string, answer Answer, sum records.Summary) Answer {
	if s.Gen == nil {
		return answer
	}

	raw, err := s.Gen.Generate(ctx, buildPrompt(text, sum))
	if errors.Is(err, llm.ErrNotConfigured) {
		return answer
	}
	if err != nil {
		telemetry.Warn("enrichment.fallback", map[string]any{
			"intent": answer.Intent,
			"error":  err.Error(),
		})
		metrics.IncEnrichmentFallback()
		answer.Confidence = fallbackConfidence
		return answer
	}

	parsed := parseEnrichment(raw)
	if parsed.Summary != "" {
		answer.Text += "\n\n" + parsed.Summary
	}
	if len(parsed.Insights) > 0 {
		answer.Text += "\n\n**Additional Insights:**\n"
		for _, insight := range parsed.Insights {
			answer.Text += "- " + insight + "\n"
		}
	}
	answer.Suggestions = append(answer.Suggestions, parsed.Recommendations...)
	return answer
}

func buildPrompt(text string, sum records.Summary) string {
	engines := "no engines identified yet"
	if len(sum.Engines) > 0 {
		engines = strings.Join(sum.Engines, ", ")
	}
	var b strings.Builder
	b.WriteString("You analyze chess engine performance data.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", text)
	fmt.Fprintf(&b, "Available data: %d games analyzed across %s (time range: %s).\n\n", sum.GamesAnalyzed, engines, sum.TimeRange)
	b.WriteString("Please provide:\n")
	b.WriteString("1. A short summary\n")
	b.WriteString("2. Key insights as a bulleted list\n")
	b.WriteString("3. Recommendations for improvement\n")
	return b.String()
}

var bulletPrefix = regexp.MustCompile(`^(\d+\.\s*|[-*]\s*)`)

func parseEnrichment(raw string) enrichment {
	var out enrichment

	sentences := strings.SplitN(raw, ".", 4)
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	out.Summary = strings.TrimSpace(strings.Join(sentences, "."))
	if out.Summary != "" && !strings.HasSuffix(out.Summary, ".") {
		out.Summary += "."
	}

	inRecommendations := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		lowered := strings.ToLower(trimmed)

		if strings.Contains(lowered, "recommend") || strings.Contains(lowered, "suggest") || strings.Contains(lowered, "should") {
			inRecommendations = true
		}

		if !bulletPrefix.MatchString(trimmed) {
			continue
		}
		item := strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, ""))
		if len(item) <= 10 {
			continue
		}
		if inRecommendations {
			if len(out.Recommendations) < maxRecommendations {
				out.Recommendations = append(out.Recommendations, item)
			}
		} else if len(out.Insights) < maxInsights {
			out.Insights = append(out.Insights, item)
		}
	}
	return out
}
