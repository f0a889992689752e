package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. If envFiles are given,
// the first one that loads seeds the environment; a missing .env file is a
// warning, not an error.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found, using system environment variables")
		}
		return loadFromEnv(logger)
	}

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("Environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", path)
		break
	}
	return loadFromEnv(logger)
}

func loadFromEnv(logger *slog.Logger) (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"guard_timeout", cfg.Guard.Timeout,
		"notify_buffer", cfg.Notify.Buffer,
	)
	return &cfg, nil
}
