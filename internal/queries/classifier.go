package queries

import (
	"regexp"
	"strings"
)

// Classification is rule-based and first-match-wins: each rule pairs a
// keyword predicate with an intent constructor, and the slice order is the
// priority order. Keyword sets overlap ("compare tactical" is a comparison,
// never a factor analysis), so the order is load-bearing.
type rule struct {
	keywords []string
	build    func(lowered string, entities []string) Intent
}

var rules = []rule{
	{
		keywords: []string{"compare", "vs", "versus"},
		build: func(lowered string, entities []string) Intent {
			return Comparison{Entities: entities, Focus: extractFocus(lowered)}
		},
	},
	{
		keywords: []string{"improve", "trend", "over time"},
		build: func(lowered string, entities []string) Intent {
			return TrendAnalysis{Entities: entities, Timeframe: extractTimeframe(lowered)}
		},
	},
	{
		keywords: []string{"drop", "worse", "problem", "issue"},
		build: func(lowered string, entities []string) Intent {
			return ProblemDiagnosis{Entities: entities, ProblemType: extractProblemType(lowered)}
		},
	},
	{
		keywords: []string{"best", "strongest", "performs best"},
		build: func(lowered string, entities []string) Intent {
			return BestPerformer{Entities: entities, Context: extractContext(lowered)}
		},
	},
	{
		keywords: []string{"factor", "influence", "affect"},
		build: func(lowered string, entities []string) Intent {
			return FactorAnalysis{Entities: entities, Factors: extractFactors(lowered)}
		},
	},
}

// Classify maps raw text plus recognized entities to exactly one Intent.
// All keyword checks are case-insensitive substring checks.
func Classify(text string, entities []string) Intent {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if containsAny(lowered, r.keywords) {
			return r.build(lowered, entities)
		}
	}
	return General{Entities: entities, Focus: "performance"}
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// focusKeywords is the shared category vocabulary, checked in order.
var focusKeywords = []string{"tactical", "positional", "endgame", "opening", "blitz", "rapid", "classical"}

func extractFocus(lowered string) string {
	for _, kw := range focusKeywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return "overall"
}

var sinceVersionPattern = regexp.MustCompile(`since\s+(v?\d+\.?\d*)`)

func extractTimeframe(lowered string) Timeframe {
	if strings.Contains(lowered, "since") {
		if m := sinceVersionPattern.FindStringSubmatch(lowered); m != nil {
			return Timeframe{Kind: TimeframeSinceVersion, Value: m[1]}
		}
	}
	if strings.Contains(lowered, "last month") {
		return Timeframe{Kind: TimeframeDuration, Value: "1 month"}
	}
	if strings.Contains(lowered, "last week") {
		return Timeframe{Kind: TimeframeDuration, Value: "1 week"}
	}
	return Timeframe{Kind: TimeframeRecent, Value: "recent"}
}

func extractProblemType(lowered string) string {
	for _, kw := range []string{"tactical", "positional", "endgame"} {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	if strings.Contains(lowered, "time") {
		return "time_management"
	}
	return "general"
}

func extractContext(lowered string) string {
	for _, kw := range []string{"blitz", "rapid", "classical", "tactical", "positional"} {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return "overall"
}

func extractFactors(lowered string) []string {
	var factors []string
	if strings.Contains(lowered, "time control") {
		factors = append(factors, "time_control")
	}
	for _, kw := range []string{"opening", "endgame", "tactical", "positional"} {
		if strings.Contains(lowered, kw) {
			factors = append(factors, kw)
		}
	}
	if len(factors) == 0 {
		return []string{"performance"}
	}
	return factors
}
