package llm

import (
	"context"
	"errors"
)

// Generator abstracts text-generation providers used for answer enrichment.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("text generation not configured")

// PlaceholderGenerator is a stub implementation used when no provider is wired.
// Callers treat its error as the normal degraded path, not a failure.
type PlaceholderGenerator struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
