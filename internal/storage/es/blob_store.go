package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
)

// Document is one stored object. Content is kept in _source only and never analyzed.
type Document struct {
	Container   string    `json:"container"`
	Key         string    `json:"key"`
	Content     string    `json:"content"`
	ContentType string    `json:"content_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlobStore struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewBlobStore(ctx context.Context, config ClientConfig) (*BlobStore, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &BlobStore{
		client:    client,
		indexName: config.IndexName,
	}
	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

func documentID(container, key string) string {
	return container + "/" + key
}

func (s *BlobStore) Download(ctx context.Context, container, key string) ([]byte, error) {
	res, err := s.client.Get(s.indexName, documentID(container, key)).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return []byte(doc.Content), nil
}

func (s *BlobStore) Upload(ctx context.Context, container, key string, data []byte) error {
	doc := Document{
		Container:   container,
		Key:         key,
		Content:     string(data),
		ContentType: storage.ContentTypeJSON,
		UpdatedAt:   time.Now().UTC(),
	}

	res, err := s.client.Index(s.indexName).
		Id(documentID(container, key)).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("Blob indexed", "id", res.Id_, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *BlobStore) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	return err == nil && ok
}

func (s *BlobStore) Close() error {
	return nil
}

func (s *BlobStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	notIndexed := false
	content := types.NewTextProperty()
	content.Index = &notIndexed

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"container":    types.NewKeywordProperty(),
			"key":          types.NewKeywordProperty(),
			"content":      content,
			"content_type": types.NewKeywordProperty(),
			"updated_at":   types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}
