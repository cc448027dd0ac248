// Package review owns the live annotation map and routes every reviewer
// action through local persistence and remote sync.
package review

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/dataset"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/DjordjeVuckovic/translation-review/internal/export"
	"github.com/DjordjeVuckovic/translation-review/internal/snapshot"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/local"
	"github.com/DjordjeVuckovic/translation-review/internal/syncer"
)

const SaveFailedMessage = "Failed to save to the remote store. Your local data is safe."

// SampleView is a sample as the reviewer sees it.
type SampleView struct {
	domain.Sample
	Annotations *domain.Annotations `json:"annotations"`
	Status      domain.Status       `json:"status"`
	Badge       domain.Badge        `json:"badge"`
}

type Option func(*Session)

// WithClock replaces time.Now for annotation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session is the single owner of the current annotation map version. Every
// method is serialized by one mutex, so handlers observe events in order.
type Session struct {
	mu      sync.Mutex
	dataset *dataset.Store
	local   *local.Store
	sync    *syncer.Syncer
	current annotation.Map
	now     func() time.Time
}

func NewSession(ds *dataset.Store, store *local.Store, s *syncer.Syncer, opts ...Option) *Session {
	session := &Session{
		dataset: ds,
		local:   store,
		sync:    s,
		current: annotation.NewMap(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// Start loads the local map, falls back to the remote snapshot when it is
// empty and repairs entries whose standard slots no longer match the dataset.
// It reports whether anything was recovered remotely.
func (s *Session) Start(ctx context.Context) bool {
	loaded := s.local.Load()
	m, recovered := s.sync.Recover(ctx, loaded)

	aligned := s.align(m)
	if recovered || !aligned.Equal(m) {
		if err := s.local.Save(aligned); err != nil {
			slog.Warn("Failed to persist annotations locally", "error", err)
		}
	}

	s.mu.Lock()
	s.current = aligned
	s.mu.Unlock()

	slog.Info("Review session started",
		"dataset", s.dataset.Name(),
		"samples", s.dataset.Len(),
		"annotated", aligned.Len(),
		"recovered", recovered)
	return recovered
}

func (s *Session) align(m annotation.Map) annotation.Map {
	if m.IsEmpty() {
		return m
	}
	entries := m.Entries()
	for id, a := range entries {
		sample, ok := s.dataset.Get(id)
		if !ok {
			continue
		}
		entries[id] = annotation.Align(a, sample)
	}
	return annotation.FromEntries(entries)
}

func (s *Session) RateTranslation(id string, r domain.Rating) (SampleView, error) {
	at := s.now()
	return s.mutate(id, func(a domain.Annotations) (domain.Annotations, error) {
		return annotation.RateTranslation(a, r, at)
	})
}

func (s *Session) CommentTranslation(id, comment string) (SampleView, error) {
	return s.mutate(id, func(a domain.Annotations) (domain.Annotations, error) {
		return annotation.CommentTranslation(a, comment), nil
	})
}

func (s *Session) RateStandard(id string, index int, r domain.Rating) (SampleView, error) {
	at := s.now()
	return s.mutate(id, func(a domain.Annotations) (domain.Annotations, error) {
		return annotation.RateStandard(a, index, r, at)
	})
}

func (s *Session) CommentStandard(id string, index int, comment string) (SampleView, error) {
	return s.mutate(id, func(a domain.Annotations) (domain.Annotations, error) {
		return annotation.CommentStandard(a, index, comment)
	})
}

type mutation func(a domain.Annotations) (domain.Annotations, error)

// mutate swaps in a new map version, writes it locally before returning and
// restarts the autosave window. A rejected mutation changes nothing.
func (s *Session) mutate(id string, fn mutation) (SampleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample, ok := s.dataset.Get(id)
	if !ok {
		return SampleView{}, apperr.NewNotFound("sample", id)
	}

	a, ok := s.current.Get(id)
	if !ok {
		a = annotation.New(sample)
	}
	next, err := fn(a)
	if err != nil {
		return SampleView{}, err
	}

	s.current = s.current.Set(id, next)
	if err := s.local.Save(s.current); err != nil {
		slog.Warn("Failed to persist annotations locally", "sample", id, "error", err)
	}
	s.sync.Schedule(s.current, s.payload)

	return view(sample, s.current), nil
}

func (s *Session) payload() ([]byte, error) {
	return snapshot.Encode(s.dataset.Samples(), s.Annotations())
}

func view(sample domain.Sample, m annotation.Map) SampleView {
	v := SampleView{Sample: sample}
	if a, ok := m.Get(sample.ID); ok {
		v.Annotations = &a
	}
	v.Status = annotation.StatusOf(m, sample)
	v.Badge = v.Status.Badge()
	return v
}

// Annotations returns the current map version.
func (s *Session) Annotations() annotation.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) DatasetName() string {
	return s.dataset.Name()
}

func (s *Session) Sample(id string) (SampleView, error) {
	sample, ok := s.dataset.Get(id)
	if !ok {
		return SampleView{}, apperr.NewNotFound("sample", id)
	}
	return view(sample, s.Annotations()), nil
}

// List returns every sample, or only those in status when it is set.
func (s *Session) List(status *domain.Status) []SampleView {
	m := s.Annotations()

	samples := s.dataset.Samples()
	if status != nil {
		samples = s.dataset.Filter(m, *status)
	}

	out := make([]SampleView, 0, len(samples))
	for _, sample := range samples {
		out = append(out, view(sample, m))
	}
	return out
}

func (s *Session) Progress() annotation.Progress {
	return annotation.Summarize(s.dataset.Samples(), s.Annotations())
}

func (s *Session) Snapshot() ([]byte, error) {
	return s.payload()
}

func (s *Session) Export(f export.Format) (export.File, error) {
	return export.Render(f, s.dataset.Name(), s.dataset.Samples(), s.Annotations(), s.now())
}

// SaveNow uploads the current snapshot right away. A save already in flight
// yields a conflict; an upload failure yields an upstream error whose message
// tells the reviewer their local data is safe.
func (s *Session) SaveNow(ctx context.Context) error {
	err := s.sync.SaveNow(ctx, s.payload)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syncer.ErrSaveInProgress):
		return apperr.NewConflict("a save is already in progress", err)
	default:
		return apperr.NewUpstream(SaveFailedMessage, err)
	}
}

func (s *Session) SyncStatus() syncer.Status {
	return s.sync.Status()
}

// Close pushes a pending autosave out before stopping the syncer.
func (s *Session) Close() {
	if s.sync.Flush() {
		slog.Info("Pending autosave flushed on shutdown")
	}
	s.sync.Close()
}
