package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads the environment-specific env file, falling back to a plain
// .env in the working directory. Already-set OS variables win.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		if err := gotenv.Load(); err != nil {
			slog.Warn("No .env file found, using OS environment")
		}
	}
}
