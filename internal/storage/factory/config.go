package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/es"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/pg"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/s3"
	"github.com/DjordjeVuckovic/translation-review/pkg/stringsutil"
)

type StorageConfig struct {
	storage.Type
	Container string
	ObjectKey string
	FSRoot    string
	Pg        *pg.PoolConfig
	Es        *es.ClientConfig
	S3        *s3.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("BLOB_STORE_TYPE"))
	if storageType == "" {
		slog.Info("BLOB_STORE_TYPE is not set, using filesystem blob store")
		storageType = storage.FS
	}
	if !isSupported(storageType) {
		slog.Error("Invalid BLOB_STORE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid BLOB_STORE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{
		Type:      storageType,
		Container: envOr("BLOB_CONTAINER", storage.DefaultContainer),
		ObjectKey: envOr("BLOB_OBJECT_KEY", storage.DefaultObjectKey),
	}

	switch storageType {
	case storage.FS:
		cfg.FSRoot = envOr("BLOB_FS_ROOT", ".review/blobs")
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: stringsutil.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: envOr("ES_INDEX_NAME", "review_blobs"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	case storage.S3:
		cfg.S3 = &s3.ClientConfig{
			Region:       os.Getenv("S3_REGION"),
			Endpoint:     os.Getenv("S3_ENDPOINT"),
			UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
			Bucket:       cfg.Container,
		}
	}

	return cfg, nil
}

func isSupported(t storage.Type) bool {
	for _, supported := range storage.Types {
		if t == supported {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// WithObject points the config at container/key, keeping the S3 bucket in step.
func (c *StorageConfig) WithObject(container, key string) *StorageConfig {
	if container != "" {
		c.Container = container
		if c.S3 != nil {
			c.S3.Bucket = container
		}
	}
	if key != "" {
		c.ObjectKey = key
	}
	return c
}
