// Package syncer keeps the remote blob store eventually consistent with the
// local annotation map.
//
// Uploads overwrite one fixed object and are never cancelled once started, so
// a stale upload can finish after a newer one and win. This is only safe with
// a single active reviewer session.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/snapshot"
	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/google/uuid"
)

const (
	DefaultDebounceWindow = 3 * time.Second
	DefaultStatusWindow   = 2 * time.Second
)

var (
	ErrSaveInProgress = errors.New("a manual save is already in progress")
	ErrClosed         = errors.New("syncer is closed")
)

// PayloadFunc produces the snapshot to upload. It is called when the upload
// actually starts, so a debounced upload always carries the latest state.
type PayloadFunc func() ([]byte, error)

type Config struct {
	Container      string
	ObjectKey      string
	DebounceWindow time.Duration
	StatusWindow   time.Duration
}

func (c Config) withDefaults() Config {
	if c.Container == "" {
		c.Container = storage.DefaultContainer
	}
	if c.ObjectKey == "" {
		c.ObjectKey = storage.DefaultObjectKey
	}
	if c.DebounceWindow <= 0 {
		c.DebounceWindow = DefaultDebounceWindow
	}
	if c.StatusWindow <= 0 {
		c.StatusWindow = DefaultStatusWindow
	}
	return c
}

type Syncer struct {
	store     storage.BlobStore
	cfg       Config
	debouncer *Debouncer
	status    *statusTracker

	manual    atomic.Bool
	recovered atomic.Bool
	uploads   atomic.Int64

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func New(store storage.BlobStore, cfg Config) *Syncer {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Syncer{
		store:     store,
		cfg:       cfg,
		debouncer: NewDebouncer(cfg.DebounceWindow),
		status:    newStatusTracker(cfg.StatusWindow),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *Syncer) Config() Config {
	return s.cfg
}

// Schedule (re)starts the debounce window after a change to m. Nothing is
// scheduled for an empty map, so a blank snapshot never hides a real one.
func (s *Syncer) Schedule(m annotation.Map, payload PayloadFunc) bool {
	if m.IsEmpty() {
		slog.Debug("Annotation map is empty, autosave skipped")
		return false
	}
	s.debouncer.Debounce(func() { s.autosave(payload) })
	return true
}

// Flush runs a pending autosave immediately and waits for it.
func (s *Syncer) Flush() bool {
	return s.debouncer.Flush()
}

func (s *Syncer) autosave(payload PayloadFunc) {
	if !s.enter() {
		return
	}
	defer s.wg.Done()

	data, err := payload()
	if err != nil {
		slog.Error("Failed to build autosave snapshot", "error", err)
		s.status.fail(err)
		return
	}
	_ = s.upload(s.ctx, data, "autosave")
}

// SaveNow uploads immediately, independent of the debounce timer. Only one
// manual save may run at a time; overlapping calls get ErrSaveInProgress.
func (s *Syncer) SaveNow(ctx context.Context, payload PayloadFunc) error {
	if !s.manual.CompareAndSwap(false, true) {
		return ErrSaveInProgress
	}
	defer s.manual.Store(false)

	if !s.enter() {
		return ErrClosed
	}
	defer s.wg.Done()

	data, err := payload()
	if err != nil {
		s.status.fail(err)
		return fmt.Errorf("failed to build snapshot: %w", err)
	}
	return s.upload(ctx, data, "manual")
}

// Saving reports whether a manual save is in flight.
func (s *Syncer) Saving() bool {
	return s.manual.Load()
}

func (s *Syncer) upload(ctx context.Context, data []byte, trigger string) error {
	id := uuid.NewString()
	s.status.begin(id)
	start := time.Now()

	slog.Info("Uploading snapshot",
		"upload_id", id,
		"trigger", trigger,
		"bytes", len(data),
		"container", s.cfg.Container,
		"key", s.cfg.ObjectKey)

	err := s.store.Upload(ctx, s.cfg.Container, s.cfg.ObjectKey, data)
	s.uploads.Add(1)
	if err != nil {
		slog.Error("Snapshot upload failed", "upload_id", id, "trigger", trigger, "error", err)
		s.status.finish(id, err)
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	slog.Info("Snapshot uploaded", "upload_id", id, "trigger", trigger, "duration", time.Since(start))
	s.status.finish(id, nil)
	return nil
}

// Recover downloads the remote snapshot when local is empty. It runs at most
// once per Syncer and never fails: every problem leaves the map empty.
func (s *Syncer) Recover(ctx context.Context, local annotation.Map) (annotation.Map, bool) {
	if !s.recovered.CompareAndSwap(false, true) {
		return local, false
	}
	if !local.IsEmpty() {
		slog.Debug("Local annotations present, recovery skipped", "entries", local.Len())
		return local, false
	}

	data, err := s.store.Download(ctx, s.cfg.Container, s.cfg.ObjectKey)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Info("No remote snapshot to recover from")
		return local, false
	}
	if err != nil {
		slog.Warn("Recovery download failed", "error", err)
		return local, false
	}

	m, err := snapshot.Extract(data)
	if err != nil {
		slog.Warn("Remote snapshot is malformed, nothing recovered", "error", err)
		return local, false
	}

	slog.Info("Recovered annotations from remote store", "entries", m.Len())
	return m, !m.IsEmpty()
}

func (s *Syncer) Status() Status {
	return s.status.get()
}

// Uploads returns how many uploads have completed, successfully or not.
func (s *Syncer) Uploads() int64 {
	return s.uploads.Load()
}

// Close drops any pending autosave and waits for running uploads.
func (s *Syncer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.debouncer.Cancel()
	s.wg.Wait()
	s.cancel()
	s.status.close()
}

func (s *Syncer) enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}
