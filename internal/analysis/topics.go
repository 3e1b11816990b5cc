package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
)

const (
	maxTopics          = 15
	maxTopicConfidence = 95
)

// ExtractTopics ranks corpus tokens by frequency, keeps the top fifteen, and
// buckets each into a topic category. Confidence derives from how often the
// token appears relative to the fragment count; it is clamped because a
// token repeated across fragments can exceed 100 and it is not a
// probability.
func ExtractTopics(fragments []models.Fragment) []models.Topic {
	if len(fragments) == 0 {
		return nil
	}

	var texts []string
	for _, fragment := range fragments {
		texts = append(texts, fragment.Text)
	}

	freq := make(map[string]int)
	var order []string
	for _, token := range Tokenize(strings.Join(texts, " ")) {
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	// Stable sort keeps first-seen order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxTopics {
		order = order[:maxTopics]
	}

	topics := make([]models.Topic, 0, len(order))
	for _, token := range order {
		confidence := math.Round(float64(freq[token]) / float64(len(fragments)) * 100)
		topics = append(topics, models.Topic{
			Topic:      capitalize(token),
			Confidence: int(math.Min(maxTopicConfidence, confidence)),
			Frequency:  freq[token],
			Category:   topicCategory(token),
		})
	}
	return topics
}

// topicCategory assigns the first category whose lexicon overlaps the token
// by substring in either direction; unmatched tokens are "General".
func topicCategory(token string) string {
	for _, category := range topicCategories {
		for _, kw := range category.keywords {
			if strings.Contains(token, kw) || strings.Contains(kw, token) {
				return category.name
			}
		}
	}
	return "General"
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
