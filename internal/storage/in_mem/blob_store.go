package in_mem

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
)

type BlobStore struct {
	lock    sync.RWMutex
	objects map[string][]byte
}

func NewBlobStore() *BlobStore {
	return &BlobStore{
		objects: make(map[string][]byte),
	}
}

func (s *BlobStore) Download(ctx context.Context, container, key string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	data, ok := s.objects[container+"/"+key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *BlobStore) Upload(ctx context.Context, container, key string, data []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.objects[container+"/"+key] = append([]byte(nil), data...)
	return nil
}

func (s *BlobStore) Healthy(ctx context.Context) bool {
	return true
}

func (s *BlobStore) Close() error {
	return nil
}
