package main

import (
	"log/slog"

	"github.com/DjordjeVuckovic/translation-review/internal/app"
	"github.com/DjordjeVuckovic/translation-review/internal/server"
)

const defaultEnvPath = "cmd/review_api/.env"

type ReviewApiConfig struct {
	Server *server.Config
	App    *app.Config
}

func LoadConfig() (*ReviewApiConfig, error) {
	serverCfg, err := server.LoadConfig(defaultEnvPath)
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	appCfg, err := app.LoadConfig(defaultEnvPath)
	if err != nil {
		return nil, err
	}

	return &ReviewApiConfig{
		Server: serverCfg,
		App:    appCfg,
	}, nil
}
