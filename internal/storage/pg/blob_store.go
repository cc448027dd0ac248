package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createBlobsTable = `
	CREATE TABLE IF NOT EXISTS blobs (
		container    TEXT        NOT NULL,
		key          TEXT        NOT NULL,
		data         BYTEA       NOT NULL,
		content_type TEXT        NOT NULL DEFAULT 'application/json',
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (container, key)
	)`

// BlobStore keeps objects as rows of the blobs table, keyed by (container, key).
type BlobStore struct {
	pool   *ConnectionPool
	db     *pgxpool.Pool
	health *HealthChecker
}

func NewBlobStore(ctx context.Context, pool *ConnectionPool) (*BlobStore, error) {
	s := &BlobStore{
		pool:   pool,
		db:     pool.GetConn(),
		health: NewHealthChecker(pool),
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BlobStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createBlobsTable); err != nil {
		return fmt.Errorf("failed to create blobs table: %w", err)
	}
	slog.Debug("Blobs table ready")
	return nil
}

func (s *BlobStore) Download(ctx context.Context, container, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM blobs WHERE container = $1 AND key = $2`,
		container, key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s/%s: %w", container, key, err)
	}
	return data, nil
}

func (s *BlobStore) Upload(ctx context.Context, container, key string, data []byte) error {
	cmd := `
		INSERT INTO blobs (container, key, data, content_type, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (container, key)
		DO UPDATE SET data = EXCLUDED.data, content_type = EXCLUDED.content_type, updated_at = now()
	`
	if _, err := s.db.Exec(ctx, cmd, container, key, data, storage.ContentTypeJSON); err != nil {
		return fmt.Errorf("failed to write blob %s/%s: %w", container, key, err)
	}
	return nil
}

func (s *BlobStore) Healthy(ctx context.Context) bool {
	return s.health.Healthy(ctx)
}

func (s *BlobStore) Close() error {
	s.pool.Close()
	return nil
}
