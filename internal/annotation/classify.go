package annotation

import "github.com/DjordjeVuckovic/translation-review/internal/domain"

// Classify computes the completion status of a sample. A complete annotation
// needs 1+standardsCount ratings: the translation plus every standard slot.
// Slots beyond the stored alignment count as unrated.
func Classify(a *domain.Annotations, standardsCount int) domain.Status {
	if a == nil {
		return domain.StatusNotStarted
	}
	if standardsCount < 0 {
		standardsCount = 0
	}

	translationRated := a.SpanishTranslationQuality.Rating.IsSet()
	standardsRated := 0
	for i, s := range a.StandardsAlignment {
		if i >= standardsCount {
			break
		}
		if s.Rating.IsSet() {
			standardsRated++
		}
	}

	switch {
	case !translationRated && standardsRated == 0:
		return domain.StatusNotStarted
	case translationRated && standardsRated == standardsCount:
		return domain.StatusDone
	default:
		return domain.StatusPartial
	}
}

// StatusOf classifies the entry stored for sample, or not-started when there is none.
func StatusOf(m Map, sample domain.Sample) domain.Status {
	a, ok := m.Get(sample.ID)
	if !ok {
		return domain.StatusNotStarted
	}
	return Classify(&a, sample.StandardsCount())
}
