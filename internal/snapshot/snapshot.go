// Package snapshot encodes the merged sample+annotation array shared by the
// remote store and the export file.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
)

// Merge returns one record per sample, in sample order, carrying its
// annotations or nil.
func Merge(samples []domain.Sample, m annotation.Map) []domain.AnnotatedSample {
	out := make([]domain.AnnotatedSample, len(samples))
	for i, s := range samples {
		out[i] = domain.AnnotatedSample{Sample: s}
		if a, ok := m.Get(s.ID); ok {
			out[i].Annotations = &a
		}
	}
	return out
}

// Encode renders the merged snapshot as pretty-printed JSON. Sample text is
// written as is: <, > and & are not escaped.
func Encode(samples []domain.Sample, m annotation.Map) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Merge(samples, m)); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Extract rebuilds an annotation map from the records that carry non-null
// annotations. Records without annotations are ignored.
func Extract(data []byte) (annotation.Map, error) {
	var records []struct {
		ID          string              `json:"id"`
		Annotations *domain.Annotations `json:"annotations"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return annotation.NewMap(), fmt.Errorf("failed to decode snapshot: %w", err)
	}

	entries := make(map[string]domain.Annotations)
	for _, r := range records {
		if r.Annotations == nil || r.ID == "" {
			continue
		}
		entries[r.ID] = *r.Annotations
	}
	return annotation.FromEntries(entries), nil
}
