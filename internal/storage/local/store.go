package local

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
)

const (
	AnnotationsKey = "translation-annotations"
	AuthKey        = "translation-tool-auth"
	UserKey        = "translation-tool-user"
)

// Store persists the whole annotation map under AnnotationsKey.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) KV() KV {
	return s.kv
}

func (s *Store) Save(m annotation.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}
	if err := s.kv.Set(AnnotationsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save annotations: %w", err)
	}
	return nil
}

// Load never fails: a missing key, corrupt content or unavailable storage all
// yield an empty map.
func (s *Store) Load() annotation.Map {
	raw, ok, err := s.kv.Get(AnnotationsKey)
	if err != nil {
		slog.Warn("Local storage unavailable, starting empty", "error", err)
		return annotation.NewMap()
	}
	if !ok || raw == "" {
		return annotation.NewMap()
	}

	var m annotation.Map
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		slog.Warn("Local annotations are corrupt, starting empty", "error", err)
		return annotation.NewMap()
	}
	return m
}
