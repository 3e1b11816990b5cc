package analysis

import (
	"github.com/talentsignal/profiler/internal/models"
)

// AnalyzeIdeology labels each fragment by a two-bucket keyword vote and
// aggregates the fragment labels into rounded percentages. A fragment is
// progressive when more progressive keywords than conservative keywords are
// present, conservative in the reverse case; ties, including zero-zero, go
// to neutral.
func AnalyzeIdeology(fragments []models.Fragment) models.IdeologySummary {
	total := len(fragments)
	if total == 0 {
		return models.IdeologySummary{}
	}

	var progressive, conservative, neutral int
	for _, fragment := range fragments {
		progCount := len(MatchKeywords(fragment.Text, progressiveKeywords))
		consCount := len(MatchKeywords(fragment.Text, conservativeKeywords))

		switch {
		case progCount > consCount:
			progressive++
		case consCount > progCount:
			conservative++
		default:
			neutral++
		}
	}

	return models.IdeologySummary{
		Progressive:  roundPercent(progressive, total),
		Neutral:      roundPercent(neutral, total),
		Conservative: roundPercent(conservative, total),
	}
}
