package annotation

import "github.com/DjordjeVuckovic/translation-review/internal/domain"

type Progress struct {
	Total      int `json:"total"`
	NotStarted int `json:"not_started"`
	Partial    int `json:"partial"`
	Done       int `json:"done"`
}

func Summarize(samples []domain.Sample, m Map) Progress {
	p := Progress{Total: len(samples)}
	for _, s := range samples {
		switch StatusOf(m, s) {
		case domain.StatusDone:
			p.Done++
		case domain.StatusPartial:
			p.Partial++
		default:
			p.NotStarted++
		}
	}
	return p
}
