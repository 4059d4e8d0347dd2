// Package engines recognizes known chess engine names in free text.
package engines

import (
	"regexp"
	"strings"
)

// alias maps a word-boundary pattern to the canonical engine identifier.
type alias struct {
	pattern   *regexp.Regexp
	canonical string
}

// Known engine names and their common spellings. Aliases of the same engine
// resolve to one canonical identifier.
var aliases = []alias{
	{regexp.MustCompile(`(?i)\bv7p3r\b`), "V7P3R"},
	{regexp.MustCompile(`(?i)\bslowmate\b`), "SLOWMATE"},
	{regexp.MustCompile(`(?i)\bc0br4\b`), "C0BR4"},
	{regexp.MustCompile(`(?i)\bcobra\b`), "C0BR4"},
}

// Recognize returns the canonical identifiers of every known engine mentioned
// in text, in order of first appearance, without duplicates. An empty result
// is valid: unmatched text contributes nothing.
func Recognize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, a := range aliases {
		loc := a.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		hits = append(hits, hit{pos: loc[0], name: a.canonical})
	}
	if len(hits) == 0 {
		return nil
	}

	// Order by first appearance, collapsing aliases of the same engine.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	seen := make(map[string]struct{}, len(hits))
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		if _, ok := seen[h.name]; ok {
			continue
		}
		seen[h.name] = struct{}{}
		out = append(out, h.name)
	}
	return out
}

// Known reports whether name is a canonical identifier in the vocabulary.
func Known(name string) bool {
	for _, a := range aliases {
		if a.canonical == name {
			return true
		}
	}
	return false
}
