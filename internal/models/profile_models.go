package models

// SentimentSummary aggregates per-fragment polarity over the whole corpus.
// Bucket percentages are rounded independently, so they may sum to 100±1.
type SentimentSummary struct {
	Positive          int      `json:"positive"`
	Neutral           int      `json:"neutral"`
	Negative          int      `json:"negative"`
	EmotionalTone     string   `json:"emotionalTone"`
	Confidence        int      `json:"confidence"`
	EmotionalKeywords []string `json:"emotionalKeywords"`
}

// IdeologySummary is a per-fragment vote distribution, not a keyword density:
// each fragment casts exactly one vote (progressive, conservative, neutral)
// and the buckets are the rounded fragment-share percentages.
type IdeologySummary struct {
	Progressive  int `json:"progressive"`
	Conservative int `json:"conservative"`
	Neutral      int `json:"neutral"`
}

// MindsetProfile is a single label summarizing the overall behavioral
// category, derived by an ordered decision list in the aggregator.
type MindsetProfile struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

// Topic is one corpus-frequency-ranked token with its assigned category.
// Confidence is frequency-derived and clamped, not a probability.
type Topic struct {
	Topic      string `json:"topic"`
	Confidence int    `json:"confidence"`
	Frequency  int    `json:"frequency"`
	Category   string `json:"category"`
}

// Interest is a coverage-scored interest category with its matched keyword
// evidence, in lexicon definition order.
type Interest struct {
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
}

// Trait is a coverage-scored personality trait. Evidence is the trait's
// static phrase list, not derived from the matched keywords.
type Trait struct {
	Trait       string   `json:"trait"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence"`
}

// CommunicationPatterns holds the structural and statistical style metrics
// computed over the joined corpus.
type CommunicationPatterns struct {
	WritingStyle         string `json:"writingStyle"`
	Formality            int    `json:"formality"`
	Engagement           int    `json:"engagement"`
	QuestionFrequency    int    `json:"questionFrequency"`
	ExclamationFrequency int    `json:"exclamationFrequency"`
	HashtagUsage         int    `json:"hashtagUsage"`
	MentionFrequency     int    `json:"mentionFrequency"`
	AvgPostLength        int    `json:"avgTweetLength"`
	ReadabilityScore     int    `json:"readabilityScore"`
}

// Profile is the full JSON-serializable analysis artifact consumed by the
// presentation layer.
type Profile struct {
	Username              string                `json:"username"`
	DisplayName           string                `json:"displayName"`
	FragmentsAnalyzed     int                   `json:"tweetsAnalyzed"`
	OverallSentiment      SentimentSummary      `json:"overallSentiment"`
	Ideology              IdeologySummary       `json:"ideology"`
	MindsetProfile        MindsetProfile        `json:"mindsetProfile"`
	TopThemes             []string              `json:"topThemes"`
	TopicAnalysis         []Topic               `json:"topicAnalysis"`
	InterestAnalysis      []Interest            `json:"interestAnalysis"`
	PersonalityTraits     []Trait               `json:"personalityTraits"`
	CommunicationPatterns CommunicationPatterns `json:"communicationPatterns"`
	RiskFactors           []string              `json:"riskFactors"`
	Recommendation        string                `json:"recommendation"`
	Hirability            int                   `json:"hirability"`
	Insights              string                `json:"geminiInsights"`
	ConversationTopics    []string              `json:"conversationTopics"`
}
