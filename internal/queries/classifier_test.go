package queries

import (
	"reflect"
	"testing"
)

func TestClassifyComparisonPrecedence(t *testing.T) {
	// Comparison keywords win over every later rule, even when the text also
	// carries trend, diagnosis, or factor keywords.
	tests := []string{
		"compare V7P3R vs SlowMate",
		"V7P3R VERSUS c0br4 over time",
		"compare tactical factors that affect performance",
		"did v7p3r get worse vs slowmate",
	}
	for _, text := range tests {
		intent := Classify(text, []string{"V7P3R"})
		if _, ok := intent.(Comparison); !ok {
			t.Fatalf("Classify(%q) = %T, want Comparison", text, intent)
		}
	}
}

func TestClassifyComparisonFocus(t *testing.T) {
	intent := Classify("compare tactical strength of v7p3r", nil)
	cmp, ok := intent.(Comparison)
	if !ok {
		t.Fatalf("expected Comparison, got %T", intent)
	}
	if cmp.Focus != "tactical" {
		t.Fatalf("expected focus tactical, got %q", cmp.Focus)
	}

	intent = Classify("compare the engines", nil)
	cmp = intent.(Comparison)
	if cmp.Focus != "overall" {
		t.Fatalf("expected default focus overall, got %q", cmp.Focus)
	}
}

func TestClassifyTrendTimeframe(t *testing.T) {
	tests := []struct {
		text string
		want Timeframe
	}{
		{"how has v7p3r improved since v2.1", Timeframe{Kind: TimeframeSinceVersion, Value: "v2.1"}},
		{"improvement since 4.0", Timeframe{Kind: TimeframeSinceVersion, Value: "4.0"}},
		{"what is the trend over the last month", Timeframe{Kind: TimeframeDuration, Value: "1 month"}},
		{"trend in the last week", Timeframe{Kind: TimeframeDuration, Value: "1 week"}},
		{"how has v7p3r improved", Timeframe{Kind: TimeframeRecent, Value: "recent"}},
	}
	for _, tt := range tests {
		intent := Classify(tt.text, nil)
		trend, ok := intent.(TrendAnalysis)
		if !ok {
			t.Fatalf("Classify(%q) = %T, want TrendAnalysis", tt.text, intent)
		}
		if trend.Timeframe != tt.want {
			t.Fatalf("Classify(%q) timeframe = %+v, want %+v", tt.text, trend.Timeframe, tt.want)
		}
	}
}

func TestClassifyProblemDiagnosis(t *testing.T) {
	// Scenario: no category keyword in the text defaults to general.
	intent := Classify("why did performance drop after the update", nil)
	diag, ok := intent.(ProblemDiagnosis)
	if !ok {
		t.Fatalf("expected ProblemDiagnosis, got %T", intent)
	}
	if diag.ProblemType != "general" {
		t.Fatalf("expected problemType general, got %q", diag.ProblemType)
	}

	intent = Classify("is there an issue with endgame play", nil)
	diag = intent.(ProblemDiagnosis)
	if diag.ProblemType != "endgame" {
		t.Fatalf("expected problemType endgame, got %q", diag.ProblemType)
	}

	intent = Classify("problem with time usage", nil)
	diag = intent.(ProblemDiagnosis)
	if diag.ProblemType != "time_management" {
		t.Fatalf("expected problemType time_management, got %q", diag.ProblemType)
	}
}

func TestClassifyBestPerformer(t *testing.T) {
	intent := Classify("which engine performs best in blitz", nil)
	best, ok := intent.(BestPerformer)
	if !ok {
		t.Fatalf("expected BestPerformer, got %T", intent)
	}
	if best.Context != "blitz" {
		t.Fatalf("expected context blitz, got %q", best.Context)
	}

	intent = Classify("what is the strongest engine", nil)
	best = intent.(BestPerformer)
	if best.Context != "overall" {
		t.Fatalf("expected default context overall, got %q", best.Context)
	}
}

func TestClassifyFactorAnalysis(t *testing.T) {
	intent := Classify("what factors influence results in time control and opening play", nil)
	fa, ok := intent.(FactorAnalysis)
	if !ok {
		t.Fatalf("expected FactorAnalysis, got %T", intent)
	}
	want := []string{"time_control", "opening"}
	if !reflect.DeepEqual(fa.Factors, want) {
		t.Fatalf("factors = %v, want %v", fa.Factors, want)
	}

	intent = Classify("which factors matter most", nil)
	fa = intent.(FactorAnalysis)
	if !reflect.DeepEqual(fa.Factors, []string{"performance"}) {
		t.Fatalf("expected default factors [performance], got %v", fa.Factors)
	}
}

func TestClassifyGeneralFallback(t *testing.T) {
	tests := []string{
		"tell me about my engines",
		"hello",
		"summary of recent data",
	}
	for _, text := range tests {
		intent := Classify(text, nil)
		gen, ok := intent.(General)
		if !ok {
			t.Fatalf("Classify(%q) = %T, want General", text, intent)
		}
		if gen.Focus != "performance" {
			t.Fatalf("expected focus performance, got %q", gen.Focus)
		}
	}
}

func TestClassifyKeepsEntities(t *testing.T) {
	entities := []string{"V7P3R", "SLOWMATE"}
	intent := Classify("compare V7P3R vs SlowMate", entities)
	if !reflect.DeepEqual(intent.EngineNames(), entities) {
		t.Fatalf("EngineNames = %v, want %v", intent.EngineNames(), entities)
	}
}
