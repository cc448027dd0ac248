// Package config loads the review settings: an optional YAML file overlaid by
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/DjordjeVuckovic/translation-review/internal/syncer"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDatasetPath    = "data/samples.json"
	DefaultLocalStorePath = ".review/local_storage.json"
)

type Review struct {
	Dataset        Dataset `yaml:"dataset"`
	Blob           Blob    `yaml:"blob"`
	Sync           Sync    `yaml:"sync"`
	Auth           Auth    `yaml:"auth"`
	LocalStorePath string  `yaml:"local_store_path"`
}

type Dataset struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

type Blob struct {
	Container string `yaml:"container"`
	ObjectKey string `yaml:"object_key"`
}

type Sync struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
	StatusWindow   time.Duration `yaml:"status_window"`
}

type Auth struct {
	Secret string `yaml:"secret"`
}

// SyncerConfig maps the settings onto the sync adapter.
func (r *Review) SyncerConfig() syncer.Config {
	return syncer.Config{
		Container:      r.Blob.Container,
		ObjectKey:      r.Blob.ObjectKey,
		DebounceWindow: r.Sync.DebounceWindow,
		StatusWindow:   r.Sync.StatusWindow,
	}
}

// Load reads path when it is set, then applies environment overrides and
// defaults.
func Load(path string) (*Review, error) {
	r := &Review{}
	if path != "" {
		parsed, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		r = parsed
	} else {
		slog.Debug("No review config file, using environment only")
	}

	if err := applyEnv(r); err != nil {
		return nil, err
	}
	applyDefaults(r)
	return r, nil
}

func LoadFromFile(path string) (*Review, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read review config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Review, error) {
	var r Review
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse review config YAML: %w", err)
	}
	if err := validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func validate(r *Review) error {
	if r.Sync.DebounceWindow < 0 {
		return fmt.Errorf("sync.debounce_window must not be negative")
	}
	if r.Sync.StatusWindow < 0 {
		return fmt.Errorf("sync.status_window must not be negative")
	}
	return nil
}

func applyEnv(r *Review) error {
	setString(&r.Dataset.Path, "DATASET_PATH")
	setString(&r.Dataset.Name, "DATASET_NAME")
	setString(&r.Blob.Container, "BLOB_CONTAINER")
	setString(&r.Blob.ObjectKey, "BLOB_OBJECT_KEY")
	setString(&r.Auth.Secret, "REVIEW_SECRET")
	setString(&r.LocalStorePath, "LOCAL_STORE_PATH")

	if err := setDuration(&r.Sync.DebounceWindow, "SYNC_DEBOUNCE_WINDOW"); err != nil {
		return err
	}
	if err := setDuration(&r.Sync.StatusWindow, "SYNC_STATUS_WINDOW"); err != nil {
		return err
	}
	return validate(r)
}

func applyDefaults(r *Review) {
	if r.Dataset.Path == "" {
		r.Dataset.Path = DefaultDatasetPath
	}
	if r.Blob.Container == "" {
		r.Blob.Container = storage.DefaultContainer
	}
	if r.Blob.ObjectKey == "" {
		r.Blob.ObjectKey = storage.DefaultObjectKey
	}
	if r.Sync.DebounceWindow == 0 {
		r.Sync.DebounceWindow = syncer.DefaultDebounceWindow
	}
	if r.Sync.StatusWindow == 0 {
		r.Sync.StatusWindow = syncer.DefaultStatusWindow
	}
	if r.LocalStorePath == "" {
		r.LocalStorePath = DefaultLocalStorePath
	}
	if r.Auth.Secret == "" {
		slog.Warn("REVIEW_SECRET is not set, any password is accepted")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
