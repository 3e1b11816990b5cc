package insight

import (
	"strings"
	"testing"
)

func TestCleanModelResponse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here is the result: {"a":1} hope it helps`, `{"a":1}`},
		{"no object", "sorry, I cannot help with that", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanModelResponse(tc.input); got != tc.want {
				t.Errorf("CleanModelResponse(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseOpinionValidation(t *testing.T) {
	t.Run("missing topics rejected", func(t *testing.T) {
		if _, err := parseOpinion(`{}`); err == nil {
			t.Fatal("expected error for payload without conversationTopics")
		}
	})

	t.Run("empty topics accepted", func(t *testing.T) {
		opinion, err := parseOpinion(`{"conversationTopics": []}`)
		if err != nil {
			t.Fatal(err)
		}
		if opinion.ConversationTopics == nil || len(opinion.ConversationTopics) != 0 {
			t.Errorf("expected empty topic list, got %v", opinion.ConversationTopics)
		}
	})

	t.Run("full payload", func(t *testing.T) {
		raw := "```json\n" + `{
			"conversationTopics": ["Distributed systems"],
			"professionalInsights": ["Deep backend experience"],
			"communicationStyle": "Direct",
			"personalityTraits": ["Analytical"],
			"redFlags": [],
			"culturalFit": "Good cultural fit",
			"insights": "Strong candidate"
		}` + "\n```"

		opinion, err := parseOpinion(raw)
		if err != nil {
			t.Fatal(err)
		}
		if opinion.CommunicationStyle != "Direct" || !opinion.HasTrait("Analytical") {
			t.Errorf("payload not decoded: %+v", opinion)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := parseOpinion(`{"conversationTopics": [`); err == nil {
			t.Fatal("expected unmarshal error")
		}
	})
}

func TestParseQuestionsValidation(t *testing.T) {
	t.Run("exactly four required", func(t *testing.T) {
		if _, err := parseQuestions(`{"questions": ["a", "b", "c"], "categories": []}`); err == nil {
			t.Fatal("expected error for three questions")
		}
	})

	t.Run("four accepted", func(t *testing.T) {
		questions, err := parseQuestions(`{"questions": ["a", "b", "c", "d"], "categories": ["x"]}`)
		if err != nil {
			t.Fatal(err)
		}
		if len(questions.Questions) != 4 {
			t.Errorf("expected 4 questions, got %d", len(questions.Questions))
		}
	})

	t.Run("prose rejected", func(t *testing.T) {
		if _, err := parseQuestions("no JSON in sight"); err == nil ||
			!strings.Contains(err.Error(), "JSON object") {
			t.Fatal("expected a missing-object error")
		}
	})
}
