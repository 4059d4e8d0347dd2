package engines

import (
	"reflect"
	"testing"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single engine",
			text: "how strong is V7P3R",
			want: []string{"V7P3R"},
		},
		{
			name: "case variants collapse to one",
			text: "V7P3R vs v7p3r",
			want: []string{"V7P3R"},
		},
		{
			name: "order of first appearance",
			text: "compare slowmate against V7P3R",
			want: []string{"SLOWMATE", "V7P3R"},
		},
		{
			name: "alias resolves to canonical",
			text: "is cobra better than C0BR4?",
			want: []string{"C0BR4"},
		},
		{
			name: "no partial word matches",
			text: "the cobras slithered",
			want: nil,
		},
		{
			name: "unknown text",
			text: "what is the meaning of life",
			want: nil,
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recognize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Recognize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRecognizeIdempotent(t *testing.T) {
	text := "compare V7P3R vs SlowMate and cobra"
	first := Recognize(text)
	second := Recognize(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected stable result, got %v then %v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 engines, got %v", first)
	}
}

func TestKnown(t *testing.T) {
	if !Known("V7P3R") {
		t.Fatalf("expected V7P3R to be known")
	}
	if Known("STOCKFISH") {
		t.Fatalf("did not expect STOCKFISH to be known")
	}
}
