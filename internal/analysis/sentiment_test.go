package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/talentsignal/profiler/internal/models"
)

func fragmentsFrom(texts ...string) []models.Fragment {
	frags := make([]models.Fragment, 0, len(texts))
	for i, text := range texts {
		frags = append(frags, models.Fragment{Text: text, ID: string(rune('a' + i))})
	}
	return frags
}

func TestAnalyzeSentimentPositiveCorpus(t *testing.T) {
	frags := fragmentsFrom(
		"I love this amazing wonderful team!",
		"I love this amazing wonderful team!",
		"I love this amazing wonderful team!",
	)

	summary := AnalyzeSentiment(frags)

	if summary.Positive != 100 {
		t.Errorf("expected 100%% positive, got %d", summary.Positive)
	}
	if summary.Negative != 0 || summary.Neutral != 0 {
		t.Errorf("expected empty negative/neutral buckets, got %d/%d", summary.Negative, summary.Neutral)
	}
	if summary.EmotionalTone != "Positive" {
		t.Errorf("expected Positive tone, got %q", summary.EmotionalTone)
	}
	if summary.Confidence < 60 || summary.Confidence > 95 {
		t.Errorf("confidence %d outside [60,95]", summary.Confidence)
	}

	// "love" is not in the emotion lexicon; "amazing" and "wonderful" are,
	// deduplicated across fragments in first-seen order.
	want := []string{"amazing", "wonderful"}
	if !reflect.DeepEqual(summary.EmotionalKeywords, want) {
		t.Errorf("expected keywords %v, got %v", want, summary.EmotionalKeywords)
	}
}

func TestAnalyzeSentimentNegativeCorpus(t *testing.T) {
	summary := AnalyzeSentiment(fragmentsFrom("I hate this terrible awful job"))

	if summary.Negative != 100 {
		t.Errorf("expected 100%% negative, got %d", summary.Negative)
	}
	if summary.EmotionalTone != "Negative" {
		t.Errorf("expected Negative tone, got %q", summary.EmotionalTone)
	}

	want := []string{"hate", "terrible", "awful"}
	if !reflect.DeepEqual(summary.EmotionalKeywords, want) {
		t.Errorf("expected keywords %v, got %v", want, summary.EmotionalKeywords)
	}
}

func TestAnalyzeSentimentNeutralCorpus(t *testing.T) {
	summary := AnalyzeSentiment(fragmentsFrom("The meeting starts at noon."))

	if summary.Neutral != 100 {
		t.Errorf("expected 100%% neutral, got %d", summary.Neutral)
	}
	if summary.EmotionalTone != "Balanced" || summary.Confidence != 70 {
		t.Errorf("expected Balanced/70, got %q/%d", summary.EmotionalTone, summary.Confidence)
	}
}

func TestAnalyzeSentimentPercentagesNearlySum(t *testing.T) {
	frags := fragmentsFrom(
		"I love this amazing wonderful team!",
		"I hate this terrible awful job",
		"The meeting starts at noon.",
	)

	summary := AnalyzeSentiment(frags)

	// Buckets are rounded independently, so 3 fragments give 33+33+33.
	sum := summary.Positive + summary.Neutral + summary.Negative
	if sum < 97 || sum > 103 {
		t.Errorf("bucket sum %d outside tolerance [97,103]", sum)
	}
}

func TestAnalyzeSentimentKeywordCap(t *testing.T) {
	text := "excited happy proud grateful inspired motivated confident optimistic enthusiastic joyful thrilled delighted"
	summary := AnalyzeSentiment(fragmentsFrom(text))

	if len(summary.EmotionalKeywords) != maxEmotionalKeywords {
		t.Errorf("expected keyword cap %d, got %d", maxEmotionalKeywords, len(summary.EmotionalKeywords))
	}
	if !strings.HasPrefix(strings.Join(summary.EmotionalKeywords, " "), "excited happy") {
		t.Errorf("cap should keep first-seen order, got %v", summary.EmotionalKeywords)
	}
}

func TestAnalyzeSentimentEmptyInput(t *testing.T) {
	summary := AnalyzeSentiment(nil)
	if summary.EmotionalTone != "Balanced" || summary.Confidence != 70 {
		t.Errorf("expected Balanced/70 for empty input, got %q/%d", summary.EmotionalTone, summary.Confidence)
	}
}

func TestFragmentPolarityIgnoresLinks(t *testing.T) {
	with := FragmentPolarity("Great results! https://example.com/terrible-awful-page")
	without := FragmentPolarity("Great results!")
	if with != without {
		t.Errorf("URL text leaked into polarity: %v != %v", with, without)
	}
}
