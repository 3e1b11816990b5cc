package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/talentsignal/profiler/config"
	"github.com/talentsignal/profiler/internal/clients"
	"github.com/talentsignal/profiler/internal/fragments"
	"github.com/talentsignal/profiler/internal/insight"
	"github.com/talentsignal/profiler/internal/logging"
	"github.com/talentsignal/profiler/internal/profiler"
	"github.com/talentsignal/profiler/internal/ratelimit"
	"github.com/talentsignal/profiler/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()
	window, maxRequests := rateLimitSettings()

	var cache *clients.ValkeyClient
	var limiter ratelimit.Limiter
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		vc, err := clients.InitValkey()
		if err != nil {
			slog.Warn("Valkey unavailable, using in-memory rate limiting",
				slog.String("error", err.Error()))
		} else {
			cache = vc
			limiter = ratelimit.NewValkeyWindow(vc, window, maxRequests)
			defer clients.CloseValkey()
		}
	}
	if limiter == nil {
		limiter = ratelimit.NewFixedWindow(window, maxRequests)
	}

	svc := &profiler.Service{
		Source:  &fragments.SampleSource{Limiter: limiter},
		Insight: insight.NewService(insight.NewGeneratorFromEnv(ctx), limiter),
		Cache:   cache,
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: server.New(svc).Handler()}

	go func() {
		slog.Info("Profiler API listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", slog.String("error", err.Error()))
	}
}

func rateLimitSettings() (time.Duration, int) {
	window := ratelimit.DefaultWindow
	if secs, err := strconv.Atoi(os.Getenv("RATE_LIMIT_WINDOW_SECONDS")); err == nil && secs > 0 {
		window = time.Duration(secs) * time.Second
	}
	maxRequests := ratelimit.DefaultMaxRequests
	if n, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX_REQUESTS")); err == nil && n > 0 {
		maxRequests = n
	}
	return window, maxRequests
}
