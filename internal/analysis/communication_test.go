package analysis

import "testing"

func TestAnalyzeCommunicationMetrics(t *testing.T) {
	frags := fragmentsFrom(
		"What do you think?",
		"We should discuss this together!",
	)

	comms := AnalyzeCommunication(frags)

	if comms.QuestionFrequency != 50 {
		t.Errorf("expected 50%% question frequency, got %d", comms.QuestionFrequency)
	}
	if comms.ExclamationFrequency != 50 {
		t.Errorf("expected 50%% exclamation frequency, got %d", comms.ExclamationFrequency)
	}
	if comms.HashtagUsage != 0 || comms.MentionFrequency != 0 {
		t.Errorf("expected no hashtags or mentions, got %d/%d", comms.HashtagUsage, comms.MentionFrequency)
	}

	// No formal or informal markers: the delta centers at 50.
	if comms.Formality != 50 {
		t.Errorf("expected neutral formality 50, got %d", comms.Formality)
	}

	// Engagement markers present: you, we, us (inside "discuss"),
	// together, discuss, think. 6 markers over 2 fragments at weight 20.
	if comms.Engagement != 60 {
		t.Errorf("expected engagement 60, got %d", comms.Engagement)
	}

	// Formality and engagement thresholds don't fire; one question over
	// two fragments exceeds the 0.3 ratio.
	if comms.WritingStyle != "Inquisitive" {
		t.Errorf("expected Inquisitive style, got %q", comms.WritingStyle)
	}

	// (18 + 32) / 2 characters.
	if comms.AvgPostLength != 25 {
		t.Errorf("expected average length 25, got %d", comms.AvgPostLength)
	}
	if comms.ReadabilityScore != 91 {
		t.Errorf("expected readability 91, got %d", comms.ReadabilityScore)
	}
}

func TestAnalyzeCommunicationCasualStyle(t *testing.T) {
	comms := AnalyzeCommunication(fragmentsFrom("gonna wanna kinda sorta chill today, yeah"))

	if comms.Formality >= 40 {
		t.Errorf("expected formality below 40, got %d", comms.Formality)
	}
	if comms.WritingStyle != "Casual" {
		t.Errorf("expected Casual style, got %q", comms.WritingStyle)
	}
}

func TestAnalyzeCommunicationFormalStyle(t *testing.T) {
	comms := AnalyzeCommunication(fragmentsFrom(
		"Therefore, the committee will reconvene; furthermore, the findings are conclusive. Moreover, the schedule holds.",
	))

	if comms.Formality <= 70 {
		t.Errorf("expected formality above 70, got %d", comms.Formality)
	}
	if comms.WritingStyle != "Formal" {
		t.Errorf("expected Formal style, got %q", comms.WritingStyle)
	}
}

func TestAnalyzeCommunicationHashtagsAndMentions(t *testing.T) {
	comms := AnalyzeCommunication(fragmentsFrom("Shipped it #launch #startup thanks @teammate"))

	if comms.HashtagUsage != 200 {
		t.Errorf("expected 2 hashtags over 1 fragment = 200, got %d", comms.HashtagUsage)
	}
	if comms.MentionFrequency != 100 {
		t.Errorf("expected 1 mention over 1 fragment = 100, got %d", comms.MentionFrequency)
	}
}

func TestAnalyzeCommunicationEmptyInput(t *testing.T) {
	comms := AnalyzeCommunication(nil)
	if comms.WritingStyle != "Professional" || comms.Formality != 50 {
		t.Errorf("expected Professional/50 for empty input, got %q/%d", comms.WritingStyle, comms.Formality)
	}
}

func TestReadabilityScoreSimpleText(t *testing.T) {
	// Three monosyllabic words in one sentence score past the ceiling and
	// clamp to 100.
	if got := readabilityScore("The cat sat."); got != 100 {
		t.Errorf("expected clamped 100, got %d", got)
	}
}

func TestReadabilityScoreEmpty(t *testing.T) {
	if got := readabilityScore(""); got != 0 {
		t.Errorf("expected 0 for empty text, got %d", got)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"cat", 1},
		{"xyz", 1},
		{"code", 1},
		{"hello", 2},
		{"apple", 1},
		{"beautiful", 3},
		{"rhythm", 1},
		{"strength", 1},
		{"creation", 2},
		{"READY", 2},
	}

	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			if got := countSyllables(tc.word); got != tc.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tc.word, got, tc.want)
			}
		})
	}
}
