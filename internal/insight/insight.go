package insight

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
	"github.com/talentsignal/profiler/internal/ratelimit"
)

// ContentGenerator produces raw model text for a prompt. Implementations
// make exactly one attempt per call; the service owns the fallback policy.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service turns LLM responses into validated opinions and interview
// questions. Every failure mode -- rate-limit rejection, transport error,
// cancellation, malformed response -- resolves to the fixed fallback values;
// Opinion and Questions never fail.
type Service struct {
	gen     ContentGenerator
	limiter ratelimit.Limiter
}

func NewService(gen ContentGenerator, limiter ratelimit.Limiter) *Service {
	return &Service{gen: gen, limiter: limiter}
}

// Opinion asks the model for a qualitative hiring opinion on the subject's
// fragments. The prompt sample is capped at 50 fragments.
func (s *Service) Opinion(ctx context.Context, fragments []models.Fragment, subject string) models.Opinion {
	if s == nil || s.gen == nil {
		return FallbackOpinion()
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, "opinion_"+subject) {
		slog.Warn("[Insight] Rate limit exceeded, using fallback opinion",
			slog.String("subject", subject))
		return FallbackOpinion()
	}

	raw, err := s.gen.GenerateContent(ctx, opinionPrompt(fragments, subject))
	if err != nil {
		logGenerationError("opinion", err)
		return FallbackOpinion()
	}

	opinion, err := parseOpinion(raw)
	if err != nil {
		slog.Error("[Insight] Failed to parse opinion response",
			slog.String("error", err.Error()),
			slog.String("raw_response", snippet(raw)))
		return FallbackOpinion()
	}
	return opinion
}

// Questions asks the model for four interview questions tailored to the
// profile. Anything other than exactly four questions yields the fallback
// set.
func (s *Service) Questions(ctx context.Context, profile models.Profile, subject string) models.InterviewQuestions {
	if s == nil || s.gen == nil {
		return FallbackQuestions()
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, "questions_"+subject) {
		slog.Warn("[Insight] Rate limit exceeded, using fallback questions",
			slog.String("subject", subject))
		return FallbackQuestions()
	}

	raw, err := s.gen.GenerateContent(ctx, questionsPrompt(profile, subject))
	if err != nil {
		logGenerationError("questions", err)
		return FallbackQuestions()
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		slog.Error("[Insight] Failed to parse questions response",
			slog.String("error", err.Error()),
			slog.String("raw_response", snippet(raw)))
		return FallbackQuestions()
	}
	return questions
}

// logGenerationError separates quota, safety, and unknown failures for
// observability. The control-flow outcome is identical: fallback.
func logGenerationError(kind string, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		slog.Warn("[Insight] Provider quota exceeded, using fallback",
			slog.String("kind", kind))
	case strings.Contains(msg, "safety"):
		slog.Warn("[Insight] Provider safety filter triggered, using fallback",
			slog.String("kind", kind))
	default:
		slog.Error("[Insight] Provider call failed, using fallback",
			slog.String("kind", kind),
			slog.String("error", msg))
	}
}

// FallbackOpinion is the fixed value set substituted whenever the opinion
// collaborator fails or returns a malformed response.
func FallbackOpinion() models.Opinion {
	return models.Opinion{
		ConversationTopics:   []string{"Technology", "Professional Development", "Leadership"},
		ProfessionalInsights: []string{"Shows technical expertise", "Demonstrates leadership qualities"},
		CommunicationStyle:   "Professional and engaging",
		PersonalityTraits:    []string{"Analytical", "Collaborative"},
		RedFlags:             []string{},
		CulturalFit:          "Good cultural fit",
		Insights:             "Professional individual with strong technical background",
	}
}

// FallbackQuestions is the fixed question set substituted whenever the
// question collaborator fails or returns a malformed response.
func FallbackQuestions() models.InterviewQuestions {
	return models.InterviewQuestions{
		Questions: []string{
			"Based on your social media presence, I can see you're passionate about technology. Can you tell me about a recent project where you applied innovative thinking?",
			"I noticed you frequently discuss teamwork and collaboration. How do you handle conflicts within a team environment?",
			"Your posts show a strong interest in continuous learning. What's the most challenging skill you've learned recently and how did you approach it?",
			"I see you're active in professional communities. How do you stay updated with industry trends and what value do you bring to professional networks?",
		},
		Categories: []string{
			"Technical/Expertise",
			"Cultural Fit",
			"Problem Solving",
			"Communication",
		},
	}
}

func snippet(s string) string {
	const snippetLen = 100
	if len(s) > snippetLen {
		return s[:snippetLen] + "..."
	}
	return s
}
