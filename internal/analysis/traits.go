package analysis

import (
	"sort"

	"github.com/talentsignal/profiler/internal/models"
)

// AnalyzeTraits coverage-scores the eight personality traits over the joined
// corpus, with the same inclusion filter and ordering as the interest
// analyzer. The evidence phrases are static per trait; they describe the
// trait's signal, not the specific keywords that happened to match.
func AnalyzeTraits(fragments []models.Fragment) []models.Trait {
	allText := joinTexts(fragments)

	var traits []models.Trait
	for _, trait := range personalityTraits {
		matched := MatchKeywords(allText, trait.keywords)
		if len(matched) == 0 {
			continue
		}

		traits = append(traits, models.Trait{
			Trait:       trait.name,
			Score:       CoverageScore(len(matched), len(trait.keywords)),
			Description: trait.description,
			Evidence:    trait.evidence,
		})
	}

	sort.SliceStable(traits, func(i, j int) bool {
		return traits[i].Score > traits[j].Score
	})
	return traits
}
