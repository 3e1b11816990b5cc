package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/talentsignal/profiler/internal/models"
)

var (
	hashtagPattern  = regexp.MustCompile(`#\w+`)
	mentionPattern  = regexp.MustCompile(`@\w+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

const engagementWeight = 20

// AnalyzeCommunication computes the structural style metrics over the joined
// corpus: punctuation and markup frequencies, formality and engagement
// lexicon deltas, a threshold-based writing style, and a simplified Flesch
// reading-ease estimate.
func AnalyzeCommunication(fragments []models.Fragment) models.CommunicationPatterns {
	total := len(fragments)
	if total == 0 {
		return models.CommunicationPatterns{WritingStyle: "Professional", Formality: 50}
	}

	allText := joinTexts(fragments)
	lower := strings.ToLower(allText)

	questionCount := strings.Count(allText, "?")
	exclamationCount := strings.Count(allText, "!")
	hashtagCount := len(hashtagPattern.FindAllString(allText, -1))
	mentionCount := len(mentionPattern.FindAllString(allText, -1))

	var lengthSum int
	for _, fragment := range fragments {
		lengthSum += utf8.RuneCountInString(fragment.Text)
	}

	formalCount := len(MatchKeywords(lower, formalWords))
	informalCount := len(MatchKeywords(lower, informalWords))
	formality := int(math.Round(float64(formalCount-informalCount) /
		math.Max(float64(formalCount+informalCount), 1) * 50))
	formality = clamp(formality+50, 0, 100)

	engagementCount := len(MatchKeywords(lower, engagementWords))
	engagement := int(math.Round(float64(engagementCount) / float64(total) * engagementWeight))
	if engagement > 100 {
		engagement = 100
	}

	// First matching style wins; the order is fixed.
	style := "Professional"
	switch {
	case formality < 40:
		style = "Casual"
	case formality > 70:
		style = "Formal"
	case engagement > 60:
		style = "Engaging"
	case float64(questionCount) > float64(total)*0.3:
		style = "Inquisitive"
	}

	return models.CommunicationPatterns{
		WritingStyle:         style,
		Formality:            formality,
		Engagement:           engagement,
		QuestionFrequency:    roundPercent(questionCount, total),
		ExclamationFrequency: roundPercent(exclamationCount, total),
		HashtagUsage:         roundPercent(hashtagCount, total),
		MentionFrequency:     roundPercent(mentionCount, total),
		AvgPostLength:        int(math.Round(float64(lengthSum) / float64(total))),
		ReadabilityScore:     readabilityScore(allText),
	}
}

// readabilityScore is the simplified Flesch Reading Ease formula clamped to
// [0,100]. Sentence splitting keeps the empty trailing segment after final
// punctuation, matching the original estimator.
func readabilityScore(text string) int {
	words := strings.Fields(text)
	sentences := sentencePattern.Split(text, -1)
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	var syllables int
	for _, word := range words {
		syllables += countSyllables(word)
	}

	avgWordsPerSentence := float64(len(words)) / float64(len(sentences))
	avgSyllablesPerWord := float64(syllables) / float64(len(words))
	score := math.Round(206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord)

	return clamp(int(score), 0, 100)
}

// countSyllables estimates syllables by counting transitions into vowel runs.
// Words of three characters or fewer count as one; a trailing "e" is usually
// silent and is discounted; the floor is one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) <= 3 {
		return 1
	}

	const vowels = "aeiouy"
	count := 0
	previousWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
