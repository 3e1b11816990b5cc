package analysis

import "testing"

func TestAnalyzeIdeologyVotesPerFragment(t *testing.T) {
	frags := fragmentsFrom(
		"diversity and inclusion matter",
		"business profit growth mindset",
		"hello there friend",
	)

	summary := AnalyzeIdeology(frags)

	if summary.Progressive != 33 {
		t.Errorf("expected 33%% progressive, got %d", summary.Progressive)
	}
	if summary.Conservative != 33 {
		t.Errorf("expected 33%% conservative, got %d", summary.Conservative)
	}
	if summary.Neutral != 33 {
		t.Errorf("expected 33%% neutral, got %d", summary.Neutral)
	}
}

func TestAnalyzeIdeologyTieGoesNeutral(t *testing.T) {
	// One progressive keyword (innovation) against one conservative
	// keyword (business).
	summary := AnalyzeIdeology(fragmentsFrom("innovation drives business"))

	if summary.Neutral != 100 {
		t.Errorf("tie should vote neutral, got %+v", summary)
	}
}

func TestAnalyzeIdeologyPresenceNotOccurrences(t *testing.T) {
	// Repeating one progressive keyword must not outvote two distinct
	// conservative keywords; counts are distinct-keyword presence.
	summary := AnalyzeIdeology(fragmentsFrom("climate climate climate business profit"))

	if summary.Conservative != 100 {
		t.Errorf("expected conservative vote, got %+v", summary)
	}
}

func TestAnalyzeIdeologyEmptyInput(t *testing.T) {
	summary := AnalyzeIdeology(nil)
	if summary.Progressive != 0 || summary.Conservative != 0 || summary.Neutral != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
