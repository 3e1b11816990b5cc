package analysis

import (
	"sort"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
)

const maxInterestKeywords = 8

// AnalyzeInterests coverage-scores the seven interest categories over the
// joined corpus. A category appears in the output only when at least one of
// its keywords matched; output is sorted descending by score and evidence is
// capped at eight keywords in lexicon order.
func AnalyzeInterests(fragments []models.Fragment) []models.Interest {
	allText := joinTexts(fragments)

	var interests []models.Interest
	for _, category := range interestCategories {
		matched := MatchKeywords(allText, category.keywords)
		if len(matched) == 0 {
			continue
		}

		score := CoverageScore(len(matched), len(category.keywords))
		if len(matched) > maxInterestKeywords {
			matched = matched[:maxInterestKeywords]
		}
		interests = append(interests, models.Interest{
			Category:    category.name,
			Keywords:    matched,
			Score:       score,
			Description: category.description,
		})
	}

	sort.SliceStable(interests, func(i, j int) bool {
		return interests[i].Score > interests[j].Score
	})
	return interests
}

func joinTexts(fragments []models.Fragment) string {
	texts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		texts = append(texts, fragment.Text)
	}
	return strings.Join(texts, " ")
}
