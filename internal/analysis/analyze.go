package analysis

import (
	"errors"
	"sync"

	"github.com/talentsignal/profiler/internal/models"
)

// ErrNoFragments is returned when an analysis is requested for an empty
// fragment list. Callers are expected to reject empty input upstream.
var ErrNoFragments = errors.New("no fragments to analyze")

// BuildProfile runs every classifier over the fragment list and assembles
// the full profile. The external opinion has already been resolved (or
// replaced by its fallback) by the caller; BuildProfile itself is pure and
// deterministic.
func BuildProfile(fragments []models.Fragment, subject string, opinion models.Opinion) (models.Profile, error) {
	if len(fragments) == 0 {
		return models.Profile{}, ErrNoFragments
	}

	var (
		sentiment models.SentimentSummary
		ideology  models.IdeologySummary
		topics    []models.Topic
		interests []models.Interest
		traits    []models.Trait
		comms     models.CommunicationPatterns
		themes    []string
	)

	// The classifiers only read the shared fragment list and their own
	// static lexicons, so they can run concurrently.
	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() { sentiment = AnalyzeSentiment(fragments) })
	run(func() { ideology = AnalyzeIdeology(fragments) })
	run(func() { topics = ExtractTopics(fragments) })
	run(func() { interests = AnalyzeInterests(fragments) })
	run(func() { traits = AnalyzeTraits(fragments) })
	run(func() { comms = AnalyzeCommunication(fragments) })
	run(func() { themes = ExtractThemes(fragments) })
	wg.Wait()

	risks := IdentifyRisks(fragments, opinion)

	return models.Profile{
		Username:              subject,
		DisplayName:           capitalize(subject),
		FragmentsAnalyzed:     len(fragments),
		OverallSentiment:      sentiment,
		Ideology:              ideology,
		MindsetProfile:        GenerateMindset(fragments, sentiment, ideology, opinion),
		TopThemes:             themes,
		TopicAnalysis:         topics,
		InterestAnalysis:      interests,
		PersonalityTraits:     traits,
		CommunicationPatterns: comms,
		RiskFactors:           risks,
		Recommendation:        GenerateRecommendation(sentiment, risks, opinion),
		Hirability:            CalculateHirability(sentiment, ideology, risks, opinion),
		Insights:              opinion.Insights,
		ConversationTopics:    opinion.ConversationTopics,
	}, nil
}
