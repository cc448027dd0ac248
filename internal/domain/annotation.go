package domain

import "time"

// TranslationAnnotation holds the reviewer verdict on the Spanish translation.
type TranslationAnnotation struct {
	Rating      Rating     `json:"rating"`
	Comment     string     `json:"comment"`
	AnnotatedAt *time.Time `json:"annotated_at"`
}

// StandardAlignmentAnnotation is positionally aligned with Sample.MatchedStandards;
// StandardCode is informational only.
type StandardAlignmentAnnotation struct {
	StandardCode string     `json:"standard_code"`
	Rating       Rating     `json:"rating"`
	Comment      string     `json:"comment"`
	AnnotatedAt  *time.Time `json:"annotated_at"`
}

type Annotations struct {
	SpanishTranslationQuality TranslationAnnotation         `json:"spanish_translation_quality"`
	StandardsAlignment        []StandardAlignmentAnnotation `json:"standards_alignment"`
}

// Clone returns a deep copy, so the copy shares no slices or timestamps with a.
func (a Annotations) Clone() Annotations {
	out := Annotations{
		SpanishTranslationQuality: a.SpanishTranslationQuality,
	}
	out.SpanishTranslationQuality.AnnotatedAt = cloneTime(a.SpanishTranslationQuality.AnnotatedAt)

	if a.StandardsAlignment != nil {
		out.StandardsAlignment = make([]StandardAlignmentAnnotation, len(a.StandardsAlignment))
		for i, s := range a.StandardsAlignment {
			s.AnnotatedAt = cloneTime(s.AnnotatedAt)
			out.StandardsAlignment[i] = s
		}
	}
	return out
}

// RatedCount returns how many of the 1+len(StandardsAlignment) slots carry a rating.
func (a Annotations) RatedCount() int {
	n := 0
	if a.SpanishTranslationQuality.Rating.IsSet() {
		n++
	}
	for _, s := range a.StandardsAlignment {
		if s.Rating.IsSet() {
			n++
		}
	}
	return n
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
