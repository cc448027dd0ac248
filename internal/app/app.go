// Package app wires the dataset, local store, blob store and review session
// shared by the API server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/translation-review/internal/auth"
	"github.com/DjordjeVuckovic/translation-review/internal/config"
	"github.com/DjordjeVuckovic/translation-review/internal/dataset"
	"github.com/DjordjeVuckovic/translation-review/internal/review"
	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/factory"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/local"
	"github.com/DjordjeVuckovic/translation-review/internal/syncer"
	"github.com/DjordjeVuckovic/translation-review/pkg/config/env"
)

type Config struct {
	Review  *config.Review
	Storage factory.StorageConfig
}

// LoadConfig loads .env (ENV_PATH or envPath), the optional review YAML file
// named by REVIEW_CONFIG_PATH and the blob store settings.
func LoadConfig(envPath string) (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), envPath); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	reviewCfg, err := config.Load(os.Getenv("REVIEW_CONFIG_PATH"))
	if err != nil {
		slog.Error("Failed to load review configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	storageCfg.WithObject(reviewCfg.Blob.Container, reviewCfg.Blob.ObjectKey)

	return &Config{
		Review:  reviewCfg,
		Storage: *storageCfg,
	}, nil
}

// ConfigureLogging sets the default slog level from LOG_LEVEL.
func ConfigureLogging() {
	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			slog.Warn("Invalid LOG_LEVEL, using info", "value", raw)
			level = slog.LevelInfo
		}
	}
	slog.SetLogLoggerLevel(level)
}

type App struct {
	Dataset *dataset.Store
	KV      *local.FileKV
	Local   *local.Store
	Blobs   storage.BlobStore
	Syncer  *syncer.Syncer
	Session *review.Session
	Gate    *auth.Gate
}

// New builds every component but does not start the session.
func New(ctx context.Context, cfg *Config) (*App, error) {
	ds, err := dataset.LoadFile(cfg.Review.Dataset.Path, cfg.Review.Dataset.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	kv, err := local.NewFileKV(cfg.Review.LocalStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	store := local.NewStore(kv)

	blobs, err := factory.NewBlobStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %w", err)
	}
	slog.Info("Blob store ready",
		"type", cfg.Storage.Type,
		"container", cfg.Review.Blob.Container,
		"key", cfg.Review.Blob.ObjectKey)

	sync := syncer.New(blobs, cfg.Review.SyncerConfig())

	return &App{
		Dataset: ds,
		KV:      kv,
		Local:   store,
		Blobs:   blobs,
		Syncer:  sync,
		Session: review.NewSession(ds, store, sync),
		Gate:    auth.NewGate(kv, cfg.Review.Auth.Secret),
	}, nil
}

// Close flushes pending autosaves and releases the blob store.
func (a *App) Close() {
	a.Session.Close()
	if err := a.Blobs.Close(); err != nil {
		slog.Warn("Failed to close blob store", "error", err)
	}
}
