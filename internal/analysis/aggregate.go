package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
)

// mindsetInput is everything the mindset decision list may consult.
type mindsetInput struct {
	allText   string
	sentiment models.SentimentSummary
	ideology  models.IdeologySummary
	opinion   models.Opinion
}

// mindsetRule pairs a predicate with the profile it yields. Rules are
// evaluated in order; the first match wins.
type mindsetRule struct {
	matches func(in mindsetInput) bool
	profile models.MindsetProfile
}

var mindsetRules = []mindsetRule{
	{
		matches: func(in mindsetInput) bool {
			return in.sentiment.Positive > 60 && in.ideology.Progressive > 50
		},
		profile: models.MindsetProfile{
			Category:    "Optimistic Innovator",
			Description: "Positive outlook with progressive values. Likely to embrace change and new ideas.",
			Score:       85,
		},
	},
	{
		matches: func(in mindsetInput) bool {
			return in.sentiment.Positive > 60 && in.ideology.Conservative > 50
		},
		profile: models.MindsetProfile{
			Category:    "Pragmatic Leader",
			Description: "Positive outlook with focus on proven methods. Values stability and results.",
			Score:       75,
		},
	},
	{
		matches: func(in mindsetInput) bool {
			return in.sentiment.Negative > 40
		},
		profile: models.MindsetProfile{
			Category:    "Critical Thinker",
			Description: "Tends to be critical and analytical. May challenge status quo.",
			Score:       55,
		},
	},
	{
		matches: func(in mindsetInput) bool {
			return strings.Contains(in.allText, "learning") || strings.Contains(in.allText, "growth")
		},
		profile: models.MindsetProfile{
			Category:    "Growth-Oriented",
			Description: "Focused on continuous improvement and development.",
			Score:       80,
		},
	},
	{
		matches: func(in mindsetInput) bool {
			return in.opinion.HasTrait("Analytical")
		},
		profile: models.MindsetProfile{
			Category:    "Analytical Professional",
			Description: "Data-driven approach with strong analytical thinking skills.",
			Score:       75,
		},
	},
	{
		matches: func(in mindsetInput) bool {
			return in.opinion.HasTrait("Collaborative")
		},
		profile: models.MindsetProfile{
			Category:    "Team Player",
			Description: "Strong collaborative skills and team-oriented mindset.",
			Score:       80,
		},
	},
}

var defaultMindset = models.MindsetProfile{
	Category:    "Balanced Professional",
	Description: "Shows balanced perspective with professional focus",
	Score:       65,
}

// GenerateMindset evaluates the mindset decision list over the corpus, the
// local summaries, and the external opinion.
func GenerateMindset(fragments []models.Fragment, sentiment models.SentimentSummary,
	ideology models.IdeologySummary, opinion models.Opinion) models.MindsetProfile {
	in := mindsetInput{
		allText:   strings.ToLower(joinTexts(fragments)),
		sentiment: sentiment,
		ideology:  ideology,
		opinion:   opinion,
	}
	for _, rule := range mindsetRules {
		if rule.matches(in) {
			return rule.profile
		}
	}
	return defaultMindset
}

// CalculateHirability combines the local summaries, the merged risk count,
// and the external opinion into a 0-100 suitability estimate. An even
// progressive/conservative split counts in the candidate's favor.
func CalculateHirability(sentiment models.SentimentSummary, ideology models.IdeologySummary,
	riskFactors []string, opinion models.Opinion) int {
	score := 50.0

	score += float64(sentiment.Positive) * 0.3
	score -= float64(sentiment.Negative) * 0.3

	balance := 100 - abs(ideology.Progressive-ideology.Conservative)
	score += float64(balance) * 0.1

	score -= float64(len(riskFactors)) * 15

	switch opinion.CulturalFit {
	case "Good cultural fit":
		score += 10
	case "Poor cultural fit":
		score -= 15
	}

	if len(opinion.ProfessionalInsights) > 2 {
		score += 5
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// GenerateRecommendation walks an ordered rule list: identified risks first,
// then external red flags, then endorsement tiers by positive share.
func GenerateRecommendation(sentiment models.SentimentSummary, riskFactors []string,
	opinion models.Opinion) string {
	if len(riskFactors) > 0 {
		return fmt.Sprintf("Caution recommended. Identified %d potential concern(s): %s. Consider further investigation before hiring.",
			len(riskFactors), strings.Join(riskFactors, ", "))
	}

	if len(opinion.RedFlags) > 0 {
		return fmt.Sprintf("Proceed with caution. AI analysis identified potential concerns: %s. Recommend additional screening.",
			strings.Join(opinion.RedFlags, ", "))
	}

	if sentiment.Positive > 70 && opinion.CulturalFit == "Good cultural fit" {
		return "Excellent candidate profile. Shows positive outlook, professional engagement, and strong cultural fit. Highly recommended for further consideration."
	}

	if sentiment.Positive > 50 {
		return "Good candidate profile. Demonstrates professional engagement and balanced perspective. Suitable for most roles with proper onboarding."
	}

	return "Proceed with caution. Profile shows mixed signals. Recommend conducting additional interviews to assess cultural fit and professional alignment."
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
