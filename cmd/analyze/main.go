package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talentsignal/profiler/config"
	"github.com/talentsignal/profiler/internal/fragments"
	"github.com/talentsignal/profiler/internal/insight"
	"github.com/talentsignal/profiler/internal/logging"
	"github.com/talentsignal/profiler/internal/models"
	"github.com/talentsignal/profiler/internal/profiler"
	"github.com/talentsignal/profiler/internal/ratelimit"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	file := flag.String("file", "", "path to a JSON file with fragments (objects or bare strings)")
	handle := flag.String("handle", "", "subject handle for the built-in sample source")
	subject := flag.String("subject", "candidate", "subject name used in the report")
	questions := flag.Bool("questions", false, "also generate interview questions")
	flag.Parse()

	ctx := context.Background()
	limiter := ratelimit.NewFixedWindow(ratelimit.DefaultWindow, ratelimit.DefaultMaxRequests)
	svc := &profiler.Service{
		Source:  &fragments.SampleSource{Limiter: limiter},
		Insight: insight.NewService(insight.NewGeneratorFromEnv(ctx), limiter),
	}

	var (
		profile models.Profile
		err     error
	)
	switch {
	case *file != "":
		var frags []models.Fragment
		frags, err = readFragments(*file)
		if err == nil {
			profile, err = svc.AnalyzeFragments(ctx, frags, *subject)
		}
	case *handle != "":
		var frags []models.Fragment
		frags, err = svc.Source.Fetch(ctx, *handle)
		if err == nil {
			profile, err = svc.AnalyzeFragments(ctx, frags, *handle)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printJSON(profile)

	if *questions {
		printJSON(svc.InterviewQuestions(ctx, profile, profile.Username))
	}
}

// readFragments accepts either a JSON array of fragment objects or a bare
// array of statement strings.
func readFragments(path string) ([]models.Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var frags []models.Fragment
	if err := json.Unmarshal(data, &frags); err == nil {
		return frags, nil
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("parse %s: expected fragment objects or strings: %w", path, err)
	}
	return fragments.FromTexts(texts), nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("Failed to render output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
