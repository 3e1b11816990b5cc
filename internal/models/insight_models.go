package models

// Opinion is the qualitative judgment returned by the LLM collaborator.
// It is untrusted input: any missing or wrong-shaped field is treated as
// absent and replaced by the fallback set, never surfaced as an error.
type Opinion struct {
	ConversationTopics   []string `json:"conversationTopics"`
	ProfessionalInsights []string `json:"professionalInsights"`
	CommunicationStyle   string   `json:"communicationStyle"`
	PersonalityTraits    []string `json:"personalityTraits"`
	RedFlags             []string `json:"redFlags"`
	CulturalFit          string   `json:"culturalFit"`
	Insights             string   `json:"insights"`
}

// HasTrait reports whether the opinion's trait list contains the given trait.
func (o Opinion) HasTrait(trait string) bool {
	for _, t := range o.PersonalityTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// InterviewQuestions is the structured output of the question generator:
// exactly four question/category pairs.
type InterviewQuestions struct {
	Questions  []string `json:"questions"`
	Categories []string `json:"categories"`
}
