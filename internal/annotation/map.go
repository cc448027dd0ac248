package annotation

import (
	"encoding/json"
	"sort"

	"github.com/DjordjeVuckovic/translation-review/internal/domain"
)

// Map is an immutable mapping from sample id to that sample's annotations.
// Set never touches the receiver; it returns a new version that shares every
// unrelated entry with the old one. The zero value is an empty map.
type Map struct {
	entries map[string]domain.Annotations
}

func NewMap() Map {
	return Map{}
}

// FromEntries builds a Map from a plain Go map, copying every entry.
func FromEntries(entries map[string]domain.Annotations) Map {
	if len(entries) == 0 {
		return Map{}
	}
	m := Map{entries: make(map[string]domain.Annotations, len(entries))}
	for id, a := range entries {
		m.entries[id] = a.Clone()
	}
	return m
}

func (m Map) Get(id string) (domain.Annotations, bool) {
	a, ok := m.entries[id]
	if !ok {
		return domain.Annotations{}, false
	}
	return a.Clone(), true
}

// Set returns a new version with id bound to a.
func (m Map) Set(id string, a domain.Annotations) Map {
	next := make(map[string]domain.Annotations, len(m.entries)+1)
	for k, v := range m.entries {
		next[k] = v
	}
	next[id] = a.Clone()
	return Map{entries: next}
}

func (m Map) Len() int {
	return len(m.entries)
}

func (m Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// IDs returns the annotated sample ids in ascending order.
func (m Map) IDs() []string {
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Entries returns a deep copy of the map contents.
func (m Map) Entries() map[string]domain.Annotations {
	out := make(map[string]domain.Annotations, len(m.entries))
	for id, a := range m.entries {
		out[id] = a.Clone()
	}
	return out
}

// Equal reports whether both versions hold the same annotations.
func (m Map) Equal(other Map) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for id, a := range m.entries {
		b, ok := other.entries[id]
		if !ok || !annotationsEqual(a, b) {
			return false
		}
	}
	return true
}

func (m Map) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.entries)
}

func (m *Map) UnmarshalJSON(data []byte) error {
	var entries map[string]domain.Annotations
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*m = Map{entries: entries}
	if len(entries) == 0 {
		m.entries = nil
	}
	return nil
}

func annotationsEqual(a, b domain.Annotations) bool {
	ta, tb := a.SpanishTranslationQuality, b.SpanishTranslationQuality
	if ta.Rating != tb.Rating || ta.Comment != tb.Comment || !timeEqual(ta.AnnotatedAt, tb.AnnotatedAt) {
		return false
	}
	if len(a.StandardsAlignment) != len(b.StandardsAlignment) {
		return false
	}
	for i := range a.StandardsAlignment {
		sa, sb := a.StandardsAlignment[i], b.StandardsAlignment[i]
		if sa.StandardCode != sb.StandardCode || sa.Rating != sb.Rating || sa.Comment != sb.Comment {
			return false
		}
		if !timeEqual(sa.AnnotatedAt, sb.AnnotatedAt) {
			return false
		}
	}
	return true
}
