package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `[
  {"id": "b2", "english_text": "second", "target_grade": "6th", "matched_standards": []},
  {"id": "a1", "english_text": "first", "target_grade": "5th",
   "matched_standards": [{"standard_code": "MS-LS1-2", "grade_levels": ["6","7","8"], "similarity_score": 0.8}]},
  {"id": "b2", "english_text": "second again", "target_grade": "7th-8th", "matched_standards": []}
]`

func TestLoad_SortsByIDKeepingFileOrder(t *testing.T) {
	// Act
	s, err := Load(strings.NewReader(testDataset), "science")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "science", s.Name())
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "a1", s.Samples()[0].ID)
	assert.Equal(t, "second", s.Samples()[1].EnglishText)
	assert.Equal(t, "second again", s.Samples()[2].EnglishText)
	assert.Equal(t, []string{"b2"}, s.Duplicates())

	first, ok := s.Get("b2")
	require.True(t, ok)
	assert.Equal(t, "6th", first.TargetGrade)

	a1, ok := s.Get("a1")
	require.True(t, ok)
	require.Len(t, a1.MatchedStandards, 1)
	assert.Equal(t, []string{"6", "7", "8"}, a1.MatchedStandards[0].GradeLevels)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader(`{"id": 1}`), "bad")
	assert.Error(t, err)
}

func TestLoadFile_NameFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini_data.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0644))

	s, err := LoadFile(path, "")

	require.NoError(t, err)
	assert.Equal(t, "mini_data", s.Name())
}

func TestFilter(t *testing.T) {
	s, err := Load(strings.NewReader(testDataset), "science")
	require.NoError(t, err)

	a1, _ := s.Get("a1")
	rated, err := annotation.RateTranslation(annotation.New(a1), domain.RatingBest, time.Now())
	require.NoError(t, err)
	m := annotation.NewMap().Set("a1", rated)

	partial := s.Filter(m, domain.StatusPartial)
	notStarted := s.Filter(m, domain.StatusNotStarted)

	require.Len(t, partial, 1)
	assert.Equal(t, "a1", partial[0].ID)
	assert.Len(t, notStarted, 2)
}
