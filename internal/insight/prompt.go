package insight

import (
	"fmt"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
)

// maxPromptFragments caps the text sample sent to the model to stay inside
// provider token limits.
const maxPromptFragments = 50

func opinionPrompt(fragments []models.Fragment, subject string) string {
	if len(fragments) > maxPromptFragments {
		fragments = fragments[:maxPromptFragments]
	}
	texts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		texts = append(texts, fragment.Text)
	}

	return fmt.Sprintf(`
Analyze the following social media posts from @%s and provide insights for a hiring background check:

Posts:
%s

Please provide:
1. Key conversation topics and interests
2. Professional insights and expertise areas
3. Communication style and personality traits
4. Potential red flags or concerns
5. Overall professional assessment
6. Cultural fit indicators

Format as JSON with the following structure:
{
  "conversationTopics": ["topic1", "topic2", "topic3"],
  "professionalInsights": ["insight1", "insight2"],
  "communicationStyle": "description",
  "personalityTraits": ["trait1", "trait2"],
  "redFlags": ["flag1", "flag2"],
  "culturalFit": "assessment",
  "insights": "overall summary"
}
`, subject, strings.Join(texts, "\n\n"))
}

func questionsPrompt(profile models.Profile, subject string) string {
	interests := make([]string, 0, len(profile.InterestAnalysis))
	for _, interest := range profile.InterestAnalysis {
		interests = append(interests, interest.Category)
	}
	traits := make([]string, 0, len(profile.PersonalityTraits))
	for _, trait := range profile.PersonalityTraits {
		traits = append(traits, trait.Trait)
	}
	risks := "None detected"
	if len(profile.RiskFactors) > 0 {
		risks = strings.Join(profile.RiskFactors, ", ")
	}

	return fmt.Sprintf(`
Based on the following candidate analysis for @%s, generate 4 specific interview questions that would help assess this candidate:

Analysis Summary:
- Sentiment: %d%% positive, %d%% negative
- Mindset Profile: %s (%s)
- Top Themes: %s
- Interest Areas: %s
- Personality Traits: %s
- Risk Factors: %s
- Hirability Score: %d%%

Generate 4 interview questions that:
1. Are specific to their interests and expertise areas
2. Help assess cultural fit and personality traits
3. Address any potential concerns or risk factors
4. Are professional and appropriate for a hiring context

Format as JSON:
{
  "questions": [
    "Question 1",
    "Question 2",
    "Question 3",
    "Question 4"
  ],
  "categories": [
    "Technical/Expertise",
    "Cultural Fit",
    "Problem Solving",
    "Communication"
  ]
}
`, subject,
		profile.OverallSentiment.Positive,
		profile.OverallSentiment.Negative,
		profile.MindsetProfile.Category,
		profile.MindsetProfile.Description,
		strings.Join(profile.TopThemes, ", "),
		strings.Join(interests, ", "),
		strings.Join(traits, ", "),
		risks,
		profile.Hirability)
}
