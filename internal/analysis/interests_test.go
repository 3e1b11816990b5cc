package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeInterestsMatchedCategory(t *testing.T) {
	frags := fragmentsFrom("mentoring the team with leadership and culture")

	interests := AnalyzeInterests(frags)
	if len(interests) == 0 {
		t.Fatal("expected at least one interest")
	}

	lead := interests[0]
	if lead.Category != "Leadership & Management" {
		t.Fatalf("expected Leadership & Management first, got %q", lead.Category)
	}

	// Matched keywords stay in lexicon order; "lead" and "mentor" match
	// inside "leadership" and "mentoring" by substring.
	want := []string{"team", "leadership", "mentoring", "culture", "lead", "mentor"}
	if !reflect.DeepEqual(lead.Keywords, want) {
		t.Errorf("expected keywords %v, got %v", want, lead.Keywords)
	}
	if lead.Score != CoverageScore(len(want), 24) {
		t.Errorf("unexpected score %d", lead.Score)
	}
	if lead.Description == "" {
		t.Error("expected the category's static description")
	}
}

func TestAnalyzeInterestsInvariants(t *testing.T) {
	frags := fragmentsFrom(
		"Exploring machine learning and data platforms. #AI",
		"Mentoring the team, building culture, investing in growth.",
		"Yoga and meditation keep me balanced and healthy.",
	)
	corpus := strings.ToLower(joinTexts(frags))

	interests := AnalyzeInterests(frags)
	if len(interests) == 0 {
		t.Fatal("expected interests for a keyword-rich corpus")
	}

	for i, interest := range interests {
		if len(interest.Keywords) == 0 {
			t.Errorf("%s: matched category without keywords", interest.Category)
		}
		if len(interest.Keywords) > maxInterestKeywords {
			t.Errorf("%s: keyword list exceeds cap: %d", interest.Category, len(interest.Keywords))
		}
		if interest.Score <= 0 || interest.Score > 100 {
			t.Errorf("%s: score %d outside (0,100]", interest.Category, interest.Score)
		}
		for _, kw := range interest.Keywords {
			if !strings.Contains(corpus, kw) {
				t.Errorf("%s: keyword %q not present in corpus", interest.Category, kw)
			}
		}
		if i > 0 && interests[i-1].Score < interest.Score {
			t.Errorf("interests not sorted by score: %d before %d", interests[i-1].Score, interest.Score)
		}
	}
}

func TestAnalyzeInterestsNoMatches(t *testing.T) {
	if interests := AnalyzeInterests(fragmentsFrom("zzz qqq xxx")); len(interests) != 0 {
		t.Errorf("expected no interests, got %+v", interests)
	}
}
