package fragments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/talentsignal/profiler/internal/models"
	"github.com/talentsignal/profiler/internal/ratelimit"
)

// SampleSource serves canned corpora keyed on handle substrings. It stands
// in for a real platform client and still honors the fetch rate limit so
// the full pipeline can be exercised end to end.
type SampleSource struct {
	Limiter ratelimit.Limiter
}

func (s *SampleSource) Fetch(ctx context.Context, handle string) ([]models.Fragment, error) {
	if s.Limiter != nil && !s.Limiter.Allow(ctx, handle) {
		return nil, fmt.Errorf("rate limit exceeded for %q, try again later", handle)
	}

	slog.Info("[SampleSource] Serving sample fragments",
		slog.String("handle", handle))

	texts := sampleTexts(handle)
	now := time.Now()
	fragments := make([]models.Fragment, 0, len(texts))
	for i, text := range texts {
		fragments = append(fragments, models.Fragment{
			Text:      text,
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
			ID:        fmt.Sprintf("sample_%s_%d", handle, i),
		})
	}
	return fragments, nil
}

func sampleTexts(handle string) []string {
	lower := strings.ToLower(handle)
	switch {
	case strings.Contains(lower, "tech") || strings.Contains(lower, "dev") || strings.Contains(lower, "code"):
		return techSample
	case strings.Contains(lower, "business") || strings.Contains(lower, "ceo") || strings.Contains(lower, "founder"):
		return businessSample
	case strings.Contains(lower, "social") || strings.Contains(lower, "impact") || strings.Contains(lower, "community"):
		return socialSample
	default:
		return defaultSample
	}
}

var techSample = []string{
	"Just shipped a major feature update. The team did amazing work on this. #tech #development",
	"Exploring the latest in machine learning. The possibilities are endless. #AI #ML",
	"Code review best practices: be kind, be thorough, be constructive. #coding #bestpractices",
	"Debugging is like detective work. Love solving complex problems. #programming #debugging",
	"Open source is the future. Contributing to the community matters. #opensource #community",
	"Performance optimization is an art. Shaved 40% off load time today. #performance #optimization",
	"Testing is not optional. Quality code requires discipline. #testing #quality",
	"Refactoring legacy code is challenging but rewarding. #refactoring #legacy",
	"API design matters. Good documentation saves everyone time. #API #documentation",
	"DevOps culture is essential for modern teams. #DevOps #culture",
}

var businessSample = []string{
	"Quarterly results exceeded expectations. Great work by the entire team. #business #results",
	"Market analysis shows strong growth potential in Q4. #market #growth",
	"Strategic partnerships are key to scaling. Excited about new collaborations. #partnerships #strategy",
	"Customer feedback is invaluable. Always listening to our users. #customers #feedback",
	"Efficiency improvements led to 25% cost reduction. #efficiency #costs",
	"Building a strong company culture is our top priority. #culture #leadership",
	"Investor confidence is high. Ready for the next phase of growth. #investment #growth",
	"Team expansion underway. Hiring top talent across all departments. #hiring #talent",
	"Annual conference was a huge success. Great networking opportunities. #conference #networking",
	"Five-year plan is ambitious but achievable with the right team. #planning #vision",
}

var socialSample = []string{
	"Proud to support local community initiatives. Making a real difference. #community #impact",
	"Diversity in tech is not just important, it's essential. #diversity #inclusion",
	"Women in leadership: we need more voices at the table. #women #leadership",
	"Climate action is everyone's responsibility. #climate #sustainability",
	"Education access should be a right, not a privilege. #education #equity",
	"Mental health awareness in the workplace is crucial. #mentalhealth #workplace",
	"Supporting underrepresented communities in tech. #diversity #tech",
	"Volunteering this weekend at the local food bank. #volunteering #community",
	"Equal pay for equal work. No exceptions. #equality #pay",
	"Inclusion means listening to all perspectives. #inclusion #diversity",
}

var defaultSample = []string{
	"Just launched our new product! Excited to see how the market responds. #innovation #startup",
	"Believe in continuous learning and growth. Read 3 books this month on leadership and AI.",
	"Diversity and inclusion are core values. We're building a team that reflects our community.",
	"Work-life balance matters. Took a week off to recharge and spend time with family.",
	"Excited about the future of renewable energy. Investing in sustainable tech companies.",
	"Great discussion on ethics in AI today. We need more conversations like this.",
	"Mentoring junior developers is one of my favorite parts of the job.",
	"Open source contributions are important. Just merged a PR to help the community.",
	"Celebrating our team's achievement! Hard work and collaboration paid off.",
	"Always looking to improve. Feedback is a gift. What can we do better?",
}
