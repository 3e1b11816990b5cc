package analysis

import (
	"reflect"
	"testing"
)

func TestAnalyzeTraitsScoresAndOrder(t *testing.T) {
	traits := AnalyzeTraits(fragmentsFrom("we analyze data together as a team"))

	if len(traits) != 2 {
		t.Fatalf("expected Collaborative and Analytical, got %+v", traits)
	}

	// Collaborative matches team, together, we (3/20 = 15); Analytical
	// matches analyze, data (2/21 = 10). Sorted descending.
	if traits[0].Trait != "Collaborative" || traits[0].Score != 15 {
		t.Errorf("expected Collaborative/15 first, got %s/%d", traits[0].Trait, traits[0].Score)
	}
	if traits[1].Trait != "Analytical" || traits[1].Score != 10 {
		t.Errorf("expected Analytical/10 second, got %s/%d", traits[1].Trait, traits[1].Score)
	}
}

func TestAnalyzeTraitsEvidenceIsStatic(t *testing.T) {
	traits := AnalyzeTraits(fragmentsFrom("we analyze data together as a team"))

	for _, trait := range traits {
		for _, category := range personalityTraits {
			if category.name != trait.Trait {
				continue
			}
			if !reflect.DeepEqual(trait.Evidence, category.evidence) {
				t.Errorf("%s: evidence %v differs from the static list %v",
					trait.Trait, trait.Evidence, category.evidence)
			}
			if trait.Description != category.description {
				t.Errorf("%s: description %q differs from the static one", trait.Trait, trait.Description)
			}
		}
	}
}

func TestAnalyzeTraitsNoMatches(t *testing.T) {
	if traits := AnalyzeTraits(fragmentsFrom("zzz qqq xxx")); len(traits) != 0 {
		t.Errorf("expected no traits, got %+v", traits)
	}
}
