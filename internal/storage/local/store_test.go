package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) { return "", false, errors.New("quota exceeded") }
func (brokenKV) Set(string, string) error { return errors.New("quota exceeded") }
func (brokenKV) Delete(string) error { return errors.New("quota exceeded") }

func sample() domain.Sample {
	return domain.Sample{
		ID: "17cbcbbd",
		MatchedStandards: []domain.MatchedStandard{
			{StandardCode: "MS-LS1-2"}, {StandardCode: "MS-LS1-3"}, {StandardCode: "6-8.LS1.A"},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	// Arrange
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "nested", "local.json"))
	require.NoError(t, err)
	store := NewStore(kv)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a, err := annotation.RateTranslation(annotation.New(sample()), domain.RatingBest, at)
	require.NoError(t, err)
	a = annotation.CommentTranslation(a, "¿Está bien?")
	m := annotation.NewMap().Set("17cbcbbd", a).Set("other", annotation.New(sample()))

	// Act
	require.NoError(t, store.Save(m))
	loaded := NewStore(kv).Load()

	// Assert
	assert.True(t, m.Equal(loaded), cmp.Diff(m.Entries(), loaded.Entries()))
}

func TestStore_LoadDegradesToEmpty(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		assert.True(t, NewStore(NewMemoryKV()).Load().IsEmpty())
	})

	t.Run("corrupt value", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set(AnnotationsKey, "{not json"))
		assert.True(t, NewStore(kv).Load().IsEmpty())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "local.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
		kv, err := NewFileKV(path)
		require.NoError(t, err)
		assert.True(t, NewStore(kv).Load().IsEmpty())
	})

	t.Run("storage unavailable", func(t *testing.T) {
		store := NewStore(brokenKV{})
		assert.True(t, store.Load().IsEmpty())
		assert.Error(t, store.Save(annotation.NewMap()))
	})
}

func TestStore_RapidSavesLoseNothing(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)
	store := NewStore(kv)

	m := annotation.NewMap()
	for i := 0; i < 50; i++ {
		a, err := annotation.RateTranslation(annotation.New(sample()), domain.Ratings[i%3], time.Now())
		require.NoError(t, err)
		m = m.Set(fmt.Sprintf("s-%02d", i), a)
		require.NoError(t, store.Save(m))
	}

	loaded := store.Load()
	assert.Equal(t, 50, loaded.Len())
	assert.True(t, m.Equal(loaded))
}

func TestFileKV_OtherKeysSurvive(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	require.NoError(t, kv.Set(AuthKey, "true"))
	require.NoError(t, NewStore(kv).Save(annotation.NewMap()))
	require.NoError(t, kv.Delete(UserKey))

	v, ok, err := kv.Get(AuthKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}
