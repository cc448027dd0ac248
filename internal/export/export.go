// Package export renders the merged snapshot as a downloadable file.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/DjordjeVuckovic/translation-review/internal/snapshot"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("unsupported export format %q", s))
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return ContentTypeXLSX
	}
	return ContentTypeJSON
}

// File is a rendered export ready to be written or served.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// JSON returns the snapshot document, identical in shape to the remote object.
func JSON(samples []domain.Sample, m annotation.Map) ([]byte, error) {
	return snapshot.Encode(samples, m)
}

// FileName returns annotated_<dataset>_<YYYY-MM-DD>.json for the local date of t.
func FileName(dataset string, t time.Time) string {
	return fileName(dataset, t, FormatJSON)
}

func fileName(dataset string, t time.Time, f Format) string {
	return fmt.Sprintf("annotated_%s_%s.%s", dataset, t.Format(time.DateOnly), f)
}

func Render(f Format, dataset string, samples []domain.Sample, m annotation.Map, now time.Time) (File, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = JSON(samples, m)
	case FormatXLSX:
		data, err = XLSX(samples, m)
	default:
		return File{}, apperr.NewValidation(fmt.Sprintf("unsupported export format %q", f))
	}
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        fileName(dataset, now, f),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}
