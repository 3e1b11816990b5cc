package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/talentsignal/profiler/internal/models"
)

// CleanModelResponse strips markdown code fences from a model response and
// extracts the outermost JSON object (first "{" through last "}"). It
// returns an empty string when no object-shaped payload remains.
func CleanModelResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return ""
	}
	return cleaned[start : end+1]
}

// parseOpinion validates the minimum shape gate: the payload must be a JSON
// object with a list-typed conversationTopics field. An empty list passes;
// a missing or mistyped field does not.
func parseOpinion(raw string) (models.Opinion, error) {
	cleaned := CleanModelResponse(raw)
	if cleaned == "" {
		return models.Opinion{}, errors.New("response does not contain a JSON object")
	}

	var opinion models.Opinion
	if err := json.Unmarshal([]byte(cleaned), &opinion); err != nil {
		return models.Opinion{}, fmt.Errorf("unmarshal opinion: %w", err)
	}
	if opinion.ConversationTopics == nil {
		return models.Opinion{}, errors.New("opinion missing conversationTopics list")
	}
	return opinion, nil
}

// parseQuestions accepts only a well-formed four-question payload.
func parseQuestions(raw string) (models.InterviewQuestions, error) {
	cleaned := CleanModelResponse(raw)
	if cleaned == "" {
		return models.InterviewQuestions{}, errors.New("response does not contain a JSON object")
	}

	var questions models.InterviewQuestions
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return models.InterviewQuestions{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	if len(questions.Questions) != 4 {
		return models.InterviewQuestions{}, fmt.Errorf("expected 4 questions, got %d", len(questions.Questions))
	}
	return questions, nil
}
