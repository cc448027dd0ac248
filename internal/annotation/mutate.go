package annotation

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
)

// New builds the empty annotations for a sample: one unrated slot for the
// translation and one per matched standard, in the sample's order.
func New(sample domain.Sample) domain.Annotations {
	a := domain.Annotations{
		StandardsAlignment: make([]domain.StandardAlignmentAnnotation, len(sample.MatchedStandards)),
	}
	for i, s := range sample.MatchedStandards {
		a.StandardsAlignment[i].StandardCode = s.StandardCode
	}
	return a
}

// RateTranslation sets the translation rating and its timestamp together.
func RateTranslation(a domain.Annotations, r domain.Rating, at time.Time) (domain.Annotations, error) {
	if err := validateRating(r); err != nil {
		return a, err
	}
	out := a.Clone()
	ts := at.UTC()
	out.SpanishTranslationQuality.Rating = r
	out.SpanishTranslationQuality.AnnotatedAt = &ts
	return out, nil
}

// CommentTranslation replaces the translation comment; the timestamp is left alone.
func CommentTranslation(a domain.Annotations, comment string) domain.Annotations {
	out := a.Clone()
	out.SpanishTranslationQuality.Comment = comment
	return out
}

// RateStandard sets the rating and timestamp of the standard slot at index.
func RateStandard(a domain.Annotations, index int, r domain.Rating, at time.Time) (domain.Annotations, error) {
	if err := validateRating(r); err != nil {
		return a, err
	}
	if err := validateIndex(a, index); err != nil {
		return a, err
	}
	out := a.Clone()
	ts := at.UTC()
	out.StandardsAlignment[index].Rating = r
	out.StandardsAlignment[index].AnnotatedAt = &ts
	return out, nil
}

func CommentStandard(a domain.Annotations, index int, comment string) (domain.Annotations, error) {
	if err := validateIndex(a, index); err != nil {
		return a, err
	}
	out := a.Clone()
	out.StandardsAlignment[index].Comment = comment
	return out, nil
}

// Align makes the standards slots match the sample: missing slots are added
// unrated, extra slots are dropped. Existing slots are kept by position.
func Align(a domain.Annotations, sample domain.Sample) domain.Annotations {
	want := len(sample.MatchedStandards)
	if len(a.StandardsAlignment) == want {
		return a
	}

	out := a.Clone()
	switch {
	case len(out.StandardsAlignment) > want:
		out.StandardsAlignment = out.StandardsAlignment[:want]
	default:
		for i := len(out.StandardsAlignment); i < want; i++ {
			out.StandardsAlignment = append(out.StandardsAlignment, domain.StandardAlignmentAnnotation{
				StandardCode: sample.MatchedStandards[i].StandardCode,
			})
		}
	}
	return out
}

func validateRating(r domain.Rating) error {
	if !r.IsSet() || !r.Valid() {
		return apperr.NewValidation(fmt.Sprintf("invalid rating %q", string(r)))
	}
	return nil
}

func validateIndex(a domain.Annotations, index int) error {
	if index < 0 || index >= len(a.StandardsAlignment) {
		return apperr.NewValidation(fmt.Sprintf("standard index %d out of range [0,%d)", index, len(a.StandardsAlignment)))
	}
	return nil
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
