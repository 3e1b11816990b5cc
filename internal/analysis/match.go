package analysis

import (
	"math"
	"strings"
)

// MatchKeywords returns the lexicon keywords contained in text, in lexicon
// definition order. Matching is substring containment on the lower-cased
// text, not token-boundary aware: "art" matches inside "start". Several
// lexicons rely on this to catch inflected forms, so it must not be
// tightened to word-boundary matching.
func MatchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// ContainsAny reports whether any lexicon keyword is contained in text.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CoverageScore scores a category by the share of its lexicon that matched:
// min(100, round(100*matched/size)). Small lexicons saturate quickly; that
// is a property of the scoring policy, not a defect.
func CoverageScore(matched, size int) int {
	if size <= 0 {
		return 0
	}
	score := math.Round(float64(matched) / float64(size) * 100)
	if score > 100 {
		return 100
	}
	return int(score)
}
