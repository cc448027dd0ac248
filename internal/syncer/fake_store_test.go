package syncer

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
)

type upload struct {
	container string
	key       string
	data      string
}

// fakeStore records uploads. When gate is set, each Upload blocks until a
// value is received on the channel returned by gate for that call index.
type fakeStore struct {
	mu          sync.Mutex
	uploads     []upload
	object      []byte
	hasObject   bool
	uploadErr   error
	downloadErr error
	downloads   int
	gate        func(call int) <-chan struct{}
	started     chan int
}

func newFakeStore() *fakeStore {
	return &fakeStore{started: make(chan int, 16)}
}

func (f *fakeStore) Download(ctx context.Context, container, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.downloads++
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	if !f.hasObject {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), f.object...), nil
}

func (f *fakeStore) Upload(ctx context.Context, container, key string, data []byte) error {
	f.mu.Lock()
	call := len(f.uploads)
	f.uploads = append(f.uploads, upload{container: container, key: key})
	gate := f.gate
	f.mu.Unlock()

	f.started <- call
	if gate != nil {
		<-gate(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[call].data = string(data)
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.object = append([]byte(nil), data...)
	f.hasObject = true
	return nil
}

func (f *fakeStore) Healthy(ctx context.Context) bool {
	return true
}

func (f *fakeStore) Close() error {
	return nil
}

func (f *fakeStore) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeStore) stored() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.object)
}

func (f *fakeStore) downloadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloads
}
