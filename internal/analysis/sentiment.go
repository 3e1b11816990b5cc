package analysis

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/talentsignal/profiler/internal/models"
)

var vader = govader.NewSentimentIntensityAnalyzer()

const (
	// compoundScale maps VADER's [-1,1] compound score onto the signed
	// polarity range the bucket thresholds below were tuned for, so a
	// +-0.20 compound lands exactly on the +-2 bucket boundary.
	compoundScale = 10.0

	positiveBucketThreshold = 2.0
	negativeBucketThreshold = -2.0

	positiveToneThreshold = 1.0
	negativeToneThreshold = -1.0

	maxEmotionalKeywords = 10
)

// FragmentPolarity returns the signed polarity score for a single fragment.
func FragmentPolarity(text string) float64 {
	plain := NormalizePlainText(text)
	return vader.PolarityScores(plain).Compound * compoundScale
}

// AnalyzeSentiment buckets every fragment by polarity and summarizes the
// corpus: bucket percentages (rounded independently, so the sum may drift
// from 100 by a point), an overall emotional tone with confidence, and up to
// ten emotional keywords in first-seen order.
func AnalyzeSentiment(fragments []models.Fragment) models.SentimentSummary {
	total := len(fragments)
	if total == 0 {
		return models.SentimentSummary{EmotionalTone: "Balanced", Confidence: 70}
	}

	var positive, negative, neutral int
	var totalScore float64
	var emotionalKeywords []string
	seen := make(map[string]struct{})

	for _, fragment := range fragments {
		score := FragmentPolarity(fragment.Text)
		totalScore += score

		// Literal word equality against the emotion lists, on a plain
		// whitespace split; punctuation stays attached to its word.
		for _, word := range strings.Fields(strings.ToLower(fragment.Text)) {
			_, pos := positiveEmotionWords[word]
			_, neg := negativeEmotionWords[word]
			if !pos && !neg {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			emotionalKeywords = append(emotionalKeywords, word)
		}

		switch {
		case score > positiveBucketThreshold:
			positive++
		case score < negativeBucketThreshold:
			negative++
		default:
			neutral++
		}
	}

	avgScore := totalScore / float64(total)

	tone := "Balanced"
	confidence := 70.0
	if avgScore > positiveToneThreshold {
		tone = "Positive"
		confidence = math.Min(95, 60+avgScore*10)
	} else if avgScore < negativeToneThreshold {
		tone = "Negative"
		confidence = math.Min(95, 60+math.Abs(avgScore)*10)
	}

	if len(emotionalKeywords) > maxEmotionalKeywords {
		emotionalKeywords = emotionalKeywords[:maxEmotionalKeywords]
	}

	return models.SentimentSummary{
		Positive:          roundPercent(positive, total),
		Neutral:           roundPercent(neutral, total),
		Negative:          roundPercent(negative, total),
		EmotionalTone:     tone,
		Confidence:        int(math.Round(confidence)),
		EmotionalKeywords: emotionalKeywords,
	}
}

func roundPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
