package queries

import (
	"context"
	"fmt"
	"strings"

	"chess-analytics-backend/internal/llm"
	"chess-analytics-backend/internal/records"
)

// Synthesizer produces a structured Answer for a classified intent.
// Gen is optional; when absent or failing, synthesis falls back to the
// canned per-intent answer and never errors.
type Synthesizer struct {
	Gen llm.Generator
}

// NewSynthesizer constructs a Synthesizer. gen may be nil.
func NewSynthesizer(gen llm.Generator) *Synthesizer {
	return &Synthesizer{Gen: gen}
}

// Synthesize dispatches on the intent case, builds the canned answer, and
// optionally enriches it with generated insights.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, intent Intent, ret records.Retrieval) Answer {
	var answer Answer
	switch i := intent.(type) {
	case Comparison:
		answer = comparisonAnswer(i, ret.Summary)
	case TrendAnalysis:
		answer = trendAnswer(i, ret.Summary)
	case ProblemDiagnosis:
		answer = diagnosisAnswer(i)
	case BestPerformer:
		answer = bestPerformerAnswer(i, ret.Summary)
	case FactorAnalysis:
		answer = factorAnswer(i)
	default:
		answer = generalAnswer(ret.Summary)
	}
	answer.Intent = intent.Name()
	answer.RelatedData = ret.Summary

	return s.enrich(ctx, text, answer, ret.Summary)
}

// The narratives below embed static illustrative figures; only the game
// count, engine list, and time range are interpolated from the summary.

func comparisonAnswer(i Comparison, sum records.Summary) Answer {
	engines := i.Entities
	if len(engines) == 0 {
		engines = []string{"V7P3R", "SLOWMATE", "C0BR4"}
	}
	joined := strings.Join(engines, " and ")

	var b strings.Builder
	fmt.Fprintf(&b, "Based on analysis of %d games, here's how %s compare:\n\n", sum.GamesAnalyzed, joined)
	b.WriteString("- **V7P3R**: Currently leading with highest tactical accuracy (92%) and ELO rating (2510)\n")
	b.WriteString("- **SLOWMATE**: Excels in time management (95%) and positional understanding (91%)\n")
	b.WriteString("- **C0BR4**: Shows solid opening preparation (88%) but needs improvement in endgame evaluation\n\n")
	fmt.Fprintf(&b, "The analysis shows %s has a slight edge in %s performance.", engines[0], i.Focus)

	return Answer{
		Text:       b.String(),
		Confidence: 0.87,
		Sources: []string{
			"Recent tournament analysis",
			"Engine battle results",
			"Performance metrics database",
		},
		Suggestions: []string{
			fmt.Sprintf("Compare specific versions of %s", joined),
			"Analyze performance in different time controls",
			"Look at head-to-head match results",
		},
	}
}

func trendAnswer(i TrendAnalysis, sum records.Summary) Answer {
	engine := "V7P3R"
	if len(i.Entities) > 0 {
		engine = i.Entities[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s has shown significant improvement trends:\n\n", engine)
	b.WriteString("- **Recent Performance**: +30 ELO gain over the last 3 versions\n")
	b.WriteString("- **Tactical Strength**: 15% improvement in tactical accuracy\n")
	b.WriteString("- **Endgame Play**: 8% more wins in drawn positions\n")
	b.WriteString("- **Opening Preparation**: Enhanced book leading to better position evaluation\n\n")
	fmt.Fprintf(&b, "The upward trend is consistent across %s.", sum.TimeRange)

	return Answer{
		Text:       b.String(),
		Confidence: 0.91,
		Sources: []string{
			fmt.Sprintf("%s version comparison data", engine),
			"Historical performance metrics",
			"Tournament result analysis",
		},
		Suggestions: []string{
			"Analyze specific version improvements",
			"Compare with competitor trends",
			"Identify key development areas",
		},
	}
}

func diagnosisAnswer(i ProblemDiagnosis) Answer {
	var b strings.Builder
	b.WriteString("The performance drop appears to be caused by:\n\n")
	b.WriteString("- **Evaluation Function Regression**: Changes in piece-square tables over-weighted material\n")
	b.WriteString("- **Positional Understanding**: 12% decrease in closed position evaluation\n")
	b.WriteString("- **Strategic Decision Making**: Suboptimal trades in complex positions\n")
	b.WriteString("- **Impact**: Resulted in 25-point ELO decrease\n\n")
	fmt.Fprintf(&b, "This %s issue was identified through comparative analysis of game outcomes before and after the problematic version.", i.ProblemType)

	return Answer{
		Text:       b.String(),
		Confidence: 0.83,
		Sources: []string{
			"Version comparison analysis",
			"Game outcome statistics",
			"Evaluation function testing",
		},
		Suggestions: []string{
			"Revert problematic evaluation changes",
			"Test piece-square table adjustments",
			"Validate with engine battles",
		},
	}
}

func bestPerformerAnswer(i BestPerformer, sum records.Summary) Answer {
	bestEngine := "SLOWMATE"
	performance := "68%"
	reason := "optimized search algorithm that performs better under time pressure"
	if i.Context == "tactical" {
		bestEngine = "V7P3R"
		performance = "92%"
		reason = "superior tactical calculation and pattern recognition"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "In %s performance, **%s** currently performs best with a %s success rate.\n\n", i.Context, bestEngine, performance)
	b.WriteString("**Key Strengths:**\n")
	fmt.Fprintf(&b, "- %s\n", reason)
	b.WriteString("- Consistent performance across different time controls\n")
	b.WriteString("- Strong adaptation to opponent playing styles\n\n")
	fmt.Fprintf(&b, "This conclusion is based on analysis of %d games across %s scenarios.", sum.GamesAnalyzed, i.Context)

	return Answer{
		Text:       b.String(),
		Confidence: 0.89,
		Sources: []string{
			fmt.Sprintf("%s performance database", i.Context),
			"Comparative engine analysis",
			"Tournament result statistics",
		},
		Suggestions: []string{
			fmt.Sprintf("Analyze %s's %s techniques", bestEngine, i.Context),
			"Compare with other engines in this area",
			"Study improvement opportunities for other engines",
		},
	}
}

func factorAnswer(i FactorAnalysis) Answer {
	var b strings.Builder
	b.WriteString("Key factors influencing engine performance:\n\n")
	b.WriteString("- **Time Control Impact**: Blitz favors quick calculation, classical allows deeper analysis\n")
	b.WriteString("- **Position Type**: Tactical positions favor V7P3R, positional play favors SLOWMATE\n")
	b.WriteString("- **Game Phase**: Opening preparation affects early advantage, endgame strength determines conversion\n")
	b.WriteString("- **Opponent Strength**: Performance varies significantly against different ELO ranges\n\n")
	fmt.Fprintf(&b, "Analysis of %s shows time control has the strongest correlation with performance variation (R² = 0.74).", strings.Join(i.Factors, ", "))

	return Answer{
		Text:       b.String(),
		Confidence: 0.85,
		Sources: []string{
			"Multi-factor performance analysis",
			"Statistical correlation studies",
			"Game phase breakdown data",
		},
		Suggestions: []string{
			"Optimize for specific time controls",
			"Focus training on weak position types",
			"Develop adaptive playing strategies",
		},
	}
}

func generalAnswer(sum records.Summary) Answer {
	enginesLine := "none yet"
	if len(sum.Engines) > 0 {
		enginesLine = strings.Join(sum.Engines, ", ")
	}

	var b strings.Builder
	b.WriteString("Based on your chess engine data analysis:\n\n")
	fmt.Fprintf(&b, "- **Total Games Analyzed**: %d\n", sum.GamesAnalyzed)
	fmt.Fprintf(&b, "- **Engines Tracked**: %s\n", enginesLine)
	fmt.Fprintf(&b, "- **Data Range**: %s\n\n", sum.TimeRange)
	b.WriteString("The analysis shows consistent performance trends with several optimization opportunities. ")
	b.WriteString("Your engines demonstrate strong tactical capabilities with room for improvement in time management and endgame evaluation.")

	return Answer{
		Text:       b.String(),
		Confidence: 0.78,
		Sources: []string{
			"Comprehensive performance database",
			"Engine analysis reports",
			"Statistical trend analysis",
		},
		Suggestions: []string{
			"Ask about specific engine comparisons",
			"Explore performance trends over time",
			"Investigate areas for improvement",
		},
	}
}
