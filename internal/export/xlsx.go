package export

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Annotations"

var xlsxHeader = []any{
	"sample_id",
	"target_grade",
	"subject",
	"status",
	"item",
	"rating",
	"comment",
	"annotated_at",
}

// XLSX writes one row for the translation and one per standard slot of every
// sample, in sample order. Untouched samples get rows with empty ratings.
func XLSX(samples []domain.Sample, m annotation.Map) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if err := writeRow(f, row, xlsxHeader); err != nil {
		return nil, err
	}

	for _, s := range samples {
		a, ok := m.Get(s.ID)
		if !ok {
			a = annotation.New(s)
		}
		status := annotation.StatusOf(m, s).Badge().Label

		row++
		t := a.SpanishTranslationQuality
		if err := writeRow(f, row, []any{
			s.ID, s.TargetGrade, s.Subject, status,
			"translation", string(t.Rating), t.Comment, formatTime(t.AnnotatedAt),
		}); err != nil {
			return nil, err
		}

		for i, std := range s.MatchedStandards {
			var slot domain.StandardAlignmentAnnotation
			if i < len(a.StandardsAlignment) {
				slot = a.StandardsAlignment[i]
			}
			row++
			if err := writeRow(f, row, []any{
				s.ID, s.TargetGrade, s.Subject, status,
				std.StandardCode, string(slot.Rating), slot.Comment, formatTime(slot.AnnotatedAt),
			}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
