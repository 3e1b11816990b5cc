// Package profiler wires the fragment source, the insight collaborator, and
// the analysis engine into the three operations the API exposes.
package profiler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/talentsignal/profiler/internal/analysis"
	"github.com/talentsignal/profiler/internal/clients"
	"github.com/talentsignal/profiler/internal/fragments"
	"github.com/talentsignal/profiler/internal/insight"
	"github.com/talentsignal/profiler/internal/models"
)

type Service struct {
	Source  fragments.Source
	Insight *insight.Service
	Cache   *clients.ValkeyClient
}

// AnalyzeURL resolves the handle from a profile URL, fetches its fragments,
// and produces the full profile. A cached profile is served when present.
func (s *Service) AnalyzeURL(ctx context.Context, rawURL string) (models.Profile, error) {
	handle, err := fragments.ExtractHandle(rawURL)
	if err != nil {
		return models.Profile{}, err
	}

	if cached, ok := s.cachedProfile(ctx, handle); ok {
		return cached, nil
	}

	fetched, err := s.Source.Fetch(ctx, handle)
	if err != nil {
		return models.Profile{}, fmt.Errorf("fetch fragments for %q: %w", handle, err)
	}
	if len(fetched) == 0 {
		return models.Profile{}, fmt.Errorf("%w: no fragments found for %q", analysis.ErrNoFragments, handle)
	}

	profile, err := s.analyze(ctx, fetched, handle)
	if err != nil {
		return models.Profile{}, err
	}
	s.storeProfile(ctx, handle, profile)

	return profile, nil
}

// AnalyzeFragments profiles caller-supplied fragments for a subject without
// touching the fragment source or the cache.
func (s *Service) AnalyzeFragments(ctx context.Context, frags []models.Fragment, subject string) (models.Profile, error) {
	return s.analyze(ctx, frags, subject)
}

// InterviewQuestions generates four questions tailored to the profile. It
// never fails; the insight service degrades to its fallback set.
func (s *Service) InterviewQuestions(ctx context.Context, profile models.Profile, subject string) models.InterviewQuestions {
	return s.Insight.Questions(ctx, profile, subject)
}

func (s *Service) analyze(ctx context.Context, frags []models.Fragment, subject string) (models.Profile, error) {
	if len(frags) == 0 {
		return models.Profile{}, analysis.ErrNoFragments
	}

	opinion := s.Insight.Opinion(ctx, frags, subject)
	return analysis.BuildProfile(frags, subject, opinion)
}

func (s *Service) cachedProfile(ctx context.Context, handle string) (models.Profile, bool) {
	if s.Cache == nil {
		return models.Profile{}, false
	}
	payload, ok := s.Cache.GetProfile(ctx, handle)
	if !ok {
		return models.Profile{}, false
	}

	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		slog.Warn("[Profiler] Discarding unreadable cached profile",
			slog.String("handle", handle),
			slog.String("error", err.Error()))
		return models.Profile{}, false
	}

	slog.Info("[Profiler] Serving cached profile", slog.String("handle", handle))
	return profile, true
}

func (s *Service) storeProfile(ctx context.Context, handle string, profile models.Profile) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.Cache.StoreProfile(ctx, handle, payload); err != nil {
		slog.Warn("[Profiler] Failed to cache profile",
			slog.String("handle", handle),
			slog.String("error", err.Error()))
	}
}
