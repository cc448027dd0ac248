package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
)

// Store is the read-only record store. Samples are sorted by id once at load;
// samples sharing an id keep their file order.
type Store struct {
	name    string
	samples []domain.Sample
	index   map[string]int
	dups    []string
}

func LoadFile(path, name string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Load(f, name)
}

func Load(r io.Reader, name string) (*Store, error) {
	var samples []domain.Sample
	if err := json.NewDecoder(r).Decode(&samples); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return New(name, samples), nil
}

func New(name string, samples []domain.Sample) *Store {
	sorted := make([]domain.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	s := &Store{
		name:    name,
		samples: sorted,
		index:   make(map[string]int, len(sorted)),
	}
	for i, sample := range sorted {
		if _, ok := s.index[sample.ID]; ok {
			if len(s.dups) == 0 || s.dups[len(s.dups)-1] != sample.ID {
				s.dups = append(s.dups, sample.ID)
			}
			continue
		}
		s.index[sample.ID] = i
	}

	if len(s.dups) > 0 {
		slog.Warn("Dataset contains duplicate sample ids, their annotations will be shared",
			"dataset", name, "ids", s.dups)
	}
	slog.Info("Dataset loaded", "dataset", name, "samples", len(sorted))
	return s
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Len() int {
	return len(s.samples)
}

// Samples returns the samples in snapshot order. Callers must not modify them.
func (s *Store) Samples() []domain.Sample {
	return s.samples
}

// Get returns the first sample carrying id.
func (s *Store) Get(id string) (domain.Sample, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Sample{}, false
	}
	return s.samples[i], true
}

// Duplicates lists ids that appear more than once.
func (s *Store) Duplicates() []string {
	return s.dups
}

// Filter returns the samples currently in the given status.
func (s *Store) Filter(m annotation.Map, status domain.Status) []domain.Sample {
	var out []domain.Sample
	for _, sample := range s.samples {
		if annotation.StatusOf(m, sample) == status {
			out = append(out, sample)
		}
	}
	return out
}
