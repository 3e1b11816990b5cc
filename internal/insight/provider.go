package insight

import (
	"context"
	"log/slog"
	"os"

	"github.com/talentsignal/profiler/internal/insight/gemini"
	"github.com/talentsignal/profiler/internal/insight/openai"
)

// NewGeneratorFromEnv selects the content generator from INSIGHT_PROVIDER
// (gemini by default, openai as the alternative). A missing key or unknown
// provider yields a nil generator, which pins the service to its fallback
// values rather than failing startup.
func NewGeneratorFromEnv(ctx context.Context) ContentGenerator {
	provider := os.Getenv("INSIGHT_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		client, err := gemini.New(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			slog.Warn("[Insight] Gemini unavailable, using fixed fallback values",
				slog.String("error", err.Error()))
			return nil
		}
		slog.Info("[Insight] Using Gemini provider", slog.String("model", client.Model()))
		return client
	case "openai":
		client, err := openai.New(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
		if err != nil {
			slog.Warn("[Insight] OpenAI unavailable, using fixed fallback values",
				slog.String("error", err.Error()))
			return nil
		}
		slog.Info("[Insight] Using OpenAI provider", slog.String("model", client.Model()))
		return client
	default:
		slog.Warn("[Insight] Unknown provider, using fixed fallback values",
			slog.String("provider", provider))
		return nil
	}
}
