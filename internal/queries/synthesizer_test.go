package queries

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chess-analytics-backend/internal/llm"
	"chess-analytics-backend/internal/records"
)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

func sampleRetrieval() records.Retrieval {
	return records.Retrieval{
		Summary: records.Summary{
			GamesAnalyzed: 120,
			Engines:       []string{"V7P3R", "SLOWMATE"},
			TimeRange:     "Jan 1, 2025 - Feb 1, 2025",
		},
	}
}

func TestSynthesizeAllIntentsWellFormed(t *testing.T) {
	synth := NewSynthesizer(nil)
	ret := sampleRetrieval()

	intents := []Intent{
		Comparison{Entities: []string{"V7P3R", "SLOWMATE"}, Focus: "overall"},
		TrendAnalysis{Entities: []string{"V7P3R"}, Timeframe: Timeframe{Kind: TimeframeRecent, Value: "recent"}},
		ProblemDiagnosis{Entities: nil, ProblemType: "general"},
		BestPerformer{Entities: nil, Context: "tactical"},
		FactorAnalysis{Entities: nil, Factors: []string{"performance"}},
		General{Entities: nil, Focus: "performance"},
	}

	for _, intent := range intents {
		answer := synth.Synthesize(context.Background(), "question", intent, ret)
		if answer.Intent != intent.Name() {
			t.Fatalf("intent = %q, want %q", answer.Intent, intent.Name())
		}
		if answer.Confidence < 0 || answer.Confidence > 1 {
			t.Fatalf("%s: confidence %v out of range", intent.Name(), answer.Confidence)
		}
		if len(answer.Suggestions) == 0 {
			t.Fatalf("%s: expected at least one suggestion", intent.Name())
		}
		if answer.Text == "" {
			t.Fatalf("%s: expected non-empty narrative", intent.Name())
		}
		if answer.RelatedData.GamesAnalyzed != 120 {
			t.Fatalf("%s: expected summary interpolated, got %+v", intent.Name(), answer.RelatedData)
		}
	}
}

func TestSynthesizeComparisonMentionsBothEngines(t *testing.T) {
	synth := NewSynthesizer(nil)
	intent := Comparison{Entities: []string{"V7P3R", "SLOWMATE"}, Focus: "overall"}
	answer := synth.Synthesize(context.Background(), "compare V7P3R vs SlowMate", intent, sampleRetrieval())

	for _, name := range intent.Entities {
		if !strings.Contains(answer.Text, name) {
			t.Fatalf("expected narrative to mention %q:\n%s", name, answer.Text)
		}
	}
	if answer.Confidence != 0.87 {
		t.Fatalf("expected comparison confidence 0.87, got %v", answer.Confidence)
	}
}

func TestSynthesizeBestPerformerTacticalContext(t *testing.T) {
	synth := NewSynthesizer(nil)
	answer := synth.Synthesize(context.Background(), "best tactical engine",
		BestPerformer{Context: "tactical"}, sampleRetrieval())
	if !strings.Contains(answer.Text, "V7P3R") {
		t.Fatalf("expected V7P3R as tactical best performer:\n%s", answer.Text)
	}

	answer = synth.Synthesize(context.Background(), "best engine",
		BestPerformer{Context: "overall"}, sampleRetrieval())
	if !strings.Contains(answer.Text, "SLOWMATE") {
		t.Fatalf("expected SLOWMATE as overall best performer:\n%s", answer.Text)
	}
}

func TestSynthesizeGeneralInterpolatesSummary(t *testing.T) {
	synth := NewSynthesizer(nil)
	answer := synth.Synthesize(context.Background(), "tell me about my engines",
		General{Focus: "performance"}, sampleRetrieval())

	for _, want := range []string{"120", "V7P3R, SLOWMATE", "Jan 1, 2025 - Feb 1, 2025"} {
		if !strings.Contains(answer.Text, want) {
			t.Fatalf("expected narrative to contain %q:\n%s", want, answer.Text)
		}
	}
}

func TestEnrichmentFailureFallsBack(t *testing.T) {
	synth := NewSynthesizer(stubGenerator{err: errors.New("service unavailable")})
	answer := synth.Synthesize(context.Background(), "compare engines",
		Comparison{Focus: "overall"}, sampleRetrieval())

	if answer.Confidence != 0.70 {
		t.Fatalf("expected fallback confidence 0.70, got %v", answer.Confidence)
	}
	if len(answer.Suggestions) == 0 {
		t.Fatalf("fallback answer must keep its suggestions")
	}
	if answer.Text == "" {
		t.Fatalf("fallback answer must keep its narrative")
	}
}

func TestEnrichmentUnconfiguredKeepsCannedAnswer(t *testing.T) {
	synth := NewSynthesizer(llm.PlaceholderGenerator{})
	answer := synth.Synthesize(context.Background(), "compare v7p3r and slowmate",
		Comparison{Entities: []string{"V7P3R", "SLOWMATE"}, Focus: "overall"}, sampleRetrieval())

	if answer.Confidence != 0.87 {
		t.Fatalf("unconfigured generator must keep canned confidence, got %v", answer.Confidence)
	}
}

func TestEnrichmentSuccessAugments(t *testing.T) {
	generated := "The engines are in good shape. Performance is stable. Data quality is high.\n" +
		"- V7P3R converts winning positions more reliably than before\n" +
		"- SLOWMATE remains ahead in long time controls\n" +
		"We recommend the following:\n" +
		"1. Increase the number of blitz test games\n" +
		"2. Re-run the endgame tablebase suite\n"
	synth := NewSynthesizer(stubGenerator{text: generated})
	answer := synth.Synthesize(context.Background(), "tell me about my engines",
		General{Focus: "performance"}, sampleRetrieval())

	if answer.Confidence != 0.78 {
		t.Fatalf("successful enrichment must keep the canned confidence, got %v", answer.Confidence)
	}
	if len(answer.Suggestions) < 4 {
		t.Fatalf("expected recommendations appended to suggestions, got %v", answer.Suggestions)
	}
	if !strings.Contains(answer.Text, "Additional Insights") {
		t.Fatalf("expected insights appended to narrative:\n%s", answer.Text)
	}
}

func TestParseEnrichmentLimits(t *testing.T) {
	var b strings.Builder
	b.WriteString("Summary sentence one. Two. Three. Four.\n")
	for i := 0; i < 8; i++ {
		b.WriteString("- this is a sufficiently long insight line\n")
	}
	b.WriteString("You should consider these recommendations:\n")
	for i := 0; i < 6; i++ {
		b.WriteString("- this is a sufficiently long recommendation line\n")
	}

	parsed := parseEnrichment(b.String())
	if len(parsed.Insights) > maxInsights {
		t.Fatalf("insights capped at %d, got %d", maxInsights, len(parsed.Insights))
	}
	if len(parsed.Recommendations) > maxRecommendations {
		t.Fatalf("recommendations capped at %d, got %d", maxRecommendations, len(parsed.Recommendations))
	}
	if parsed.Summary == "" {
		t.Fatalf("expected a summary sentence")
	}
}
