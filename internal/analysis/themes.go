package analysis

import (
	"github.com/talentsignal/profiler/internal/models"
)

const maxThemes = 5

// ExtractThemes returns up to five theme labels whose lexicons have at least
// one keyword present in the corpus, in lexicon definition order.
func ExtractThemes(fragments []models.Fragment) []string {
	allText := joinTexts(fragments)

	var themes []string
	for _, category := range themeCategories {
		if ContainsAny(allText, category.keywords) {
			themes = append(themes, category.name)
		}
		if len(themes) == maxThemes {
			break
		}
	}
	return themes
}

// IdentifyRisks returns every risk category with a keyword present in the
// corpus, then merges in the external opinion's red flags. Flags already
// present locally are not duplicated; external flags append after local
// ones.
func IdentifyRisks(fragments []models.Fragment, opinion models.Opinion) []string {
	allText := joinTexts(fragments)

	var risks []string
	seen := make(map[string]struct{})
	for _, category := range riskCategories {
		if ContainsAny(allText, category.keywords) {
			risks = append(risks, category.name)
			seen[category.name] = struct{}{}
		}
	}

	for _, flag := range opinion.RedFlags {
		if _, dup := seen[flag]; dup {
			continue
		}
		seen[flag] = struct{}{}
		risks = append(risks, flag)
	}

	return risks
}
