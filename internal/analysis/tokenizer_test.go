package analysis

import (
	"strings"
	"testing"
)

func TestTokenizeFiltersShortAndStopWords(t *testing.T) {
	tokens := Tokenize("We are building the best AI platform for everyone")

	for _, tok := range tokens {
		if len(tok) < 3 {
			t.Errorf("token %q shorter than 3 chars", tok)
		}
		if _, stop := stopWords[tok]; stop {
			t.Errorf("stop word %q not filtered", tok)
		}
	}

	want := []string{"building", "best", "platform", "everyone"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok)
		}
	}
}

func TestTokenizeLowercasesAndDropsNonAlpha(t *testing.T) {
	tokens := Tokenize("Shipped v2.0 TODAY!!! 100% #winning @sam")

	for _, tok := range tokens {
		if tok != strings.ToLower(tok) {
			t.Errorf("token %q not lower-cased", tok)
		}
		for _, r := range tok {
			if r < 'a' || r > 'z' {
				t.Errorf("token %q contains non-alphabetic rune", tok)
			}
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}
