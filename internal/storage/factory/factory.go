package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/es"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/fs"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/pg"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/s3"
)

// NewBlobStore creates the remote blob store selected by cfg.Type.
func NewBlobStore(ctx context.Context, cfg StorageConfig) (storage.BlobStore, error) {
	switch cfg.Type {
	case storage.FS:
		s, err := fs.NewBlobStore(cfg.FSRoot)
		if err != nil {
			return nil, err
		}
		return s, nil

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewBlobStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewBlobStore(ctx, *cfg.Es)
		if err != nil {
			return nil, fmt.Errorf("failed to create Elasticsearch blob store: %w", err)
		}
		return s, nil

	case storage.S3:
		if cfg.S3 == nil {
			return nil, fmt.Errorf("missing S3 configuration")
		}
		s, err := s3.NewBlobStore(ctx, *cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil

	case storage.InMem:
		return in_mem.NewBlobStore(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStore), cfg.Type)
	}
}
